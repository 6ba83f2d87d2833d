// account.go - Seller and customer request rules

package validation

import "strings"

// PasswordColumn is the Changes key holding a new plain text password. The
// service layer replaces it with a digest before anything is written.
const PasswordColumn = "password"

// Changes maps column names to new values for a partial update. Only fields
// the caller supplied with a non-empty value appear.
type Changes map[string]any

// Credentials is a validated login request
type Credentials struct {
	Identifier string
	Password   string
}

var accountMessages = map[string]string{
	"email":                    "Invalid email address",
	"name":                     "Name is required",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"password.bcrypt_len":      "Password must be at most 72 bytes",
	"confirmPassword.required": "Confirm password is required",
	"confirmPassword":          "Passwords don't match",
	"phoneNumber.required":     "Phone number is required",
	"phoneNumber.digits":       "Phone number must contain only digits",
	"phoneNumber.min":          "Phone number must be at least 9 digits",
}

var accountLoginMessages = map[string]string{
	"email":             "Invalid email address",
	"password.required": "Password is required",
	"password":          "Password must be between 6 and 50 characters",
}

// AccountCreateInput is the registration body shared by sellers and
// customers. phoneNumber may be sent as a string or a number.
type AccountCreateInput struct {
	Email           string `json:"email" validate:"required,email"`
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password" validate:"required,min=6,bcrypt_len"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	PhoneNumber     Number `json:"phoneNumber" validate:"required,digits,min=9"`
}

// AccountLoginInput is the login body shared by sellers and customers
type AccountLoginInput struct {
	Email      string `json:"email" validate:"required,email"`
	Identifier string `json:"identifier" validate:"-"`
	Password   string `json:"password" validate:"required,min=6,max=50"`
}

// AccountUpdateInput is the PATCH body shared by sellers and customers
type AccountUpdateInput struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Name        *string `json:"name" validate:"omitempty"`
	PhoneNumber Number  `json:"phoneNumber" validate:"omitempty,digits,min=9"`
	Password    *string `json:"password" validate:"omitempty,min=6,bcrypt_len"`
}

// AccountRegistration is a validated seller or customer create request
type AccountRegistration struct {
	Email       string
	Name        string
	Password    string
	PhoneNumber string // normalized to +<digits>
}

func (v *Validator) AccountCreate(in AccountCreateInput) (AccountRegistration, error) {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)

	if err := v.check(in, accountMessages); err != nil {
		return AccountRegistration{}, err
	}
	return AccountRegistration{
		Email:       in.Email,
		Name:        in.Name,
		Password:    in.Password,
		PhoneNumber: NormalizePhone(string(in.PhoneNumber)),
	}, nil
}

func (v *Validator) AccountLogin(in AccountLoginInput) (Credentials, error) {
	if in.Email == "" {
		in.Email = in.Identifier
	}
	in.Email = strings.TrimSpace(in.Email)

	if err := v.check(in, accountLoginMessages); err != nil {
		return Credentials{}, err
	}
	return Credentials{Identifier: in.Email, Password: in.Password}, nil
}

func (v *Validator) AccountUpdate(in AccountUpdateInput) (Changes, error) {
	in.Email = trimmed(in.Email)
	in.Name = trimmed(in.Name)

	if err := v.check(in, accountMessages); err != nil {
		return nil, err
	}

	changes := Changes{}
	if present(in.Email) {
		changes["email"] = *in.Email
	}
	if present(in.Name) {
		changes["name"] = *in.Name
	}
	if in.PhoneNumber != "" {
		changes["phone_number"] = NormalizePhone(string(in.PhoneNumber))
	}
	if present(in.Password) {
		changes[PasswordColumn] = *in.Password
	}
	return changes, nil
}

// NormalizePhone stores seller and customer numbers as "+" followed by the
// digits, the same form used for lookups.
func NormalizePhone(digits string) string {
	return "+" + strings.TrimPrefix(strings.TrimSpace(digits), "+")
}
