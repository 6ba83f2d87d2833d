// admin.go - Admin request rules

package validation

import "strings"

var adminMessages = map[string]string{
	"username.required":        "Username is required",
	"username":                 "Username must be between 2 and 16 characters",
	"password.required":        "Password is required",
	"password":                 "Password must be between 6 and 16 characters",
	"confirmPassword.required": "Confirm password is required",
	"confirmPassword":          "Passwords don't match",
	"phoneNumber.required":     "Phone number is required",
	"phoneNumber":              "Phone number must be in the format +998XXXXXXXXX",
}

// AdminCreateInput is the body of POST /api/admin. The phone number is also
// accepted under its snake_case name.
type AdminCreateInput struct {
	Username        string `json:"username" validate:"required,min=2,max=16"`
	Password        string `json:"password" validate:"required,min=6,max=16"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	PhoneNumber     string `json:"phoneNumber" validate:"required,admin_phone"`
	PhoneNumberAlt  string `json:"phone_number" validate:"-"`
}

// AdminLoginInput is the body of POST /api/admin/login
type AdminLoginInput struct {
	Username   string `json:"username" validate:"required,min=2,max=16"`
	Identifier string `json:"identifier" validate:"-"`
	Password   string `json:"password" validate:"required,min=6,max=16"`
}

// AdminUpdateInput is the body of PATCH /api/admin/:id
type AdminUpdateInput struct {
	Username       *string `json:"username" validate:"omitempty,min=2,max=16"`
	PhoneNumber    *string `json:"phoneNumber" validate:"omitempty,admin_phone"`
	PhoneNumberAlt *string `json:"phone_number" validate:"-"`
	Password       *string `json:"password" validate:"omitempty,min=6,max=16"`
}

// AdminRegistration is a validated admin create request
type AdminRegistration struct {
	Username    string
	Password    string
	PhoneNumber string
}

func (v *Validator) AdminCreate(in AdminCreateInput) (AdminRegistration, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.PhoneNumber == "" {
		in.PhoneNumber = in.PhoneNumberAlt
	}
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if err := v.check(in, adminMessages); err != nil {
		return AdminRegistration{}, err
	}
	return AdminRegistration{
		Username:    in.Username,
		Password:    in.Password,
		PhoneNumber: in.PhoneNumber,
	}, nil
}

func (v *Validator) AdminLogin(in AdminLoginInput) (Credentials, error) {
	if in.Username == "" {
		in.Username = in.Identifier
	}
	in.Username = strings.TrimSpace(in.Username)

	if err := v.check(in, adminMessages); err != nil {
		return Credentials{}, err
	}
	return Credentials{Identifier: in.Username, Password: in.Password}, nil
}

// AdminUpdate returns only the supplied, non-empty fields keyed by column.
func (v *Validator) AdminUpdate(in AdminUpdateInput) (Changes, error) {
	in.Username = trimmed(in.Username)
	if !present(in.PhoneNumber) {
		in.PhoneNumber = in.PhoneNumberAlt
	}
	in.PhoneNumber = trimmed(in.PhoneNumber)

	if err := v.check(in, adminMessages); err != nil {
		return nil, err
	}

	changes := Changes{}
	if present(in.Username) {
		changes["username"] = *in.Username
	}
	if present(in.PhoneNumber) {
		changes["phone_number"] = *in.PhoneNumber
	}
	if present(in.Password) {
		changes[PasswordColumn] = *in.Password
	}
	return changes, nil
}
