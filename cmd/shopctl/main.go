// main.go - Seller command line client
//
// Usage: shopctl <command> [flags]
//
//	register        create a seller account
//	login           log in and remember the seller
//	logout          forget the remembered seller
//	whoami          print the remembered seller
//	products        list the seller's products          (login required)
//	add-product     create a product owned by the seller (login required)
//	update-product  change fields of a product          (login required)
//	delete-product  delete a product                    (login required)
//
// SHOPCTL_SERVER selects the API (default http://localhost:8080). The session
// is kept in SHOPCTL_SESSION_FILE, or in Redis when SHOPCTL_REDIS_ADDR is set.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"go-shop-backend/client"
	"go-shop-backend/session"
	"go-shop-backend/validation"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // .env is optional
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

// app carries what every command needs
type app struct {
	api    *client.Client
	store  *session.Store
	stdout io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: shopctl <register|login|logout|whoami|products|add-product|update-product|delete-product> [flags]")
		return 2
	}

	kv, err := sessionKV(getenv)
	if err != nil {
		fmt.Fprintln(stderr, "session:", err)
		return 1
	}
	if closer, ok := kv.(io.Closer); ok {
		defer closer.Close()
	}

	server := getenv("SHOPCTL_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	a := &app{api: client.New(server), store: session.NewStore(kv), stdout: stdout}
	if token, err := a.store.Token(ctx); err == nil {
		a.api.Token = token
	}

	commands := map[string]func(context.Context, []string) error{
		"register":       a.register,
		"login":          a.login,
		"logout":         a.logout,
		"whoami":         a.whoami,
		"products":       a.gated(a.products),
		"add-product":    a.gated(a.addProduct),
		"update-product": a.gated(a.updateProduct),
		"delete-product": a.gated(a.deleteProduct),
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		return 2
	}

	if err := cmd(ctx, args[1:]); err != nil {
		var redirect *session.RedirectError
		if errors.As(err, &redirect) {
			fmt.Fprintf(stderr, "not logged in, redirecting to %s (run: shopctl login)\n", redirect.To)
			return 3
		}
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func sessionKV(getenv func(string) string) (session.KV, error) {
	if addr := getenv("SHOPCTL_REDIS_ADDR"); addr != "" {
		db, _ := strconv.Atoi(getenv("SHOPCTL_REDIS_DB"))
		return session.NewRedisKV(addr, getenv("SHOPCTL_REDIS_PASSWORD"), db, "shopctl:"), nil
	}
	path := getenv("SHOPCTL_SESSION_FILE")
	if path == "" {
		var err error
		if path, err = session.DefaultPath(); err != nil {
			return nil, err
		}
	}
	return session.NewFileKV(path), nil
}

// gated runs cmd only when a seller is logged in
func (a *app) gated(cmd func(context.Context, session.Identity, []string) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		seller, err := a.store.Gate(ctx)
		if err != nil {
			return err
		}
		return cmd(ctx, seller, args)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	name := fs.String("name", "", "display name")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm", "", "password confirmation (defaults to -password)")
	phone := fs.String("phone", "", "phone number, digits only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *confirm == "" {
		*confirm = *password
	}

	seller, err := a.api.RegisterSeller(ctx, validation.AccountCreateInput{
		Email:           *email,
		Name:            *name,
		Password:        *password,
		ConfirmPassword: *confirm,
		PhoneNumber:     validation.Number(*phone),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "registered seller %s (%s)\n", seller.Name, seller.ID)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seller, token, err := a.api.LoginSeller(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, session.Identity{ID: seller.ID, Name: seller.Name, Email: seller.Email}); err != nil {
		return err
	}
	if err := a.store.SetToken(ctx, token); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "logged in as %s <%s>\n", seller.Name, seller.Email)
	return nil
}

func (a *app) logout(ctx context.Context, _ []string) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "logged out")
	return nil
}

func (a *app) whoami(ctx context.Context, _ []string) error {
	seller, ok, err := a.store.Current(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.stdout, "not logged in")
		return nil
	}
	fmt.Fprintf(a.stdout, "%s <%s> (%s)\n", seller.Name, seller.Email, seller.ID)
	return nil
}

func (a *app) products(ctx context.Context, seller session.Identity, _ []string) error {
	products, err := a.api.SellerProducts(ctx, seller.ID)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tQTY")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%d\n", p.ID, p.Name, p.Category, p.Price, p.Quantity)
	}
	return w.Flush()
}

func (a *app) addProduct(ctx context.Context, seller session.Identity, args []string) error {
	fs := flag.NewFlagSet("add-product", flag.ContinueOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "description")
	price := fs.String("price", "", "price, e.g. 19.99")
	quantity := fs.String("quantity", "", "units in stock")
	image := fs.String("image", "", "image URL")
	category := fs.String("category", "", "category")
	if err := fs.Parse(args); err != nil {
		return err
	}

	product, err := a.api.CreateProduct(ctx, validation.ProductCreateInput{
		Name:        *name,
		Description: *description,
		Price:       validation.Number(*price),
		Quantity:    validation.Number(*quantity),
		ImageURL:    *image,
		Category:    *category,
		SellerID:    seller.ID,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "created product %s (%s)\n", product.Name, product.ID)
	return nil
}

func (a *app) updateProduct(ctx context.Context, _ session.Identity, args []string) error {
	fs := flag.NewFlagSet("update-product", flag.ContinueOnError)
	id := fs.String("id", "", "product id")
	fs.String("name", "", "new name")
	fs.String("description", "", "new description")
	fs.String("price", "", "new price")
	fs.String("quantity", "", "new quantity")
	fs.String("image", "", "new image URL")
	fs.String("category", "", "new category")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}

	// only flags given on the command line are sent
	keys := map[string]string{"image": "imageUrl"}
	fields := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			return
		}
		key := f.Name
		if k, ok := keys[key]; ok {
			key = k
		}
		fields[key] = f.Value.String()
	})
	if len(fields) == 0 {
		return errors.New("nothing to update")
	}

	product, err := a.api.UpdateProduct(ctx, *id, fields)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "updated product %s (%s)\n", product.Name, product.ID)
	return nil
}

func (a *app) deleteProduct(ctx context.Context, _ session.Identity, args []string) error {
	fs := flag.NewFlagSet("delete-product", flag.ContinueOnError)
	id := fs.String("id", "", "product id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return errors.New("-id is required")
	}
	if err := a.api.DeleteProduct(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "deleted product %s\n", *id)
	return nil
}
