package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mukky254/ukulima-go/internal/api"
)

func (a *appEnv) productsCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ukulima products <list|show|create|update|mine> [flags]")
	}

	svc := api.NewProductService(a.client)

	sub, rest := args[0], args[1:]
	switch sub {
	case "list":
		return a.productsList(ctx, svc, rest)
	case "show":
		return a.productsShow(ctx, svc, rest)
	case "create":
		return a.productsCreate(ctx, svc, rest)
	case "update":
		return a.productsUpdate(ctx, svc, rest)
	case "mine":
		return a.productsMine(ctx, svc)
	default:
		return fmt.Errorf("unknown products subcommand %q", sub)
	}
}

func (a *appEnv) productsList(ctx context.Context, svc *api.ProductService, args []string) error {
	fs := flag.NewFlagSet("products list", flag.ExitOnError)
	search := fs.String("search", "", "free-text search")
	category := fs.String("category", "", "category filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, err := svc.List(ctx, api.ListProductsParams{Search: *search, Category: *category})
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return nil
	}
	for _, p := range products {
		a.printProductLine(p)
	}
	return nil
}

func (a *appEnv) productsShow(ctx context.Context, svc *api.ProductService, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ukulima products show <id>")
	}

	p, err := svc.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(a.out, "  %s\n", p.Description)
	fmt.Fprintf(a.out, "  Category: %s", p.Category)
	if p.Subcategory != "" {
		fmt.Fprintf(a.out, " / %s", p.Subcategory)
	}
	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "  Price: %.2f per %s, min order %d\n", p.Price, p.Unit, p.MinOrder)
	fmt.Fprintf(a.out, "  Stock: %d, available: %t\n", p.Quantity, p.IsAvailable)
	fmt.Fprintf(a.out, "  Seller: %s (%s, %s)\n", p.Farmer.DisplayName(), p.Location.City, p.Location.Country)
	fmt.Fprintf(a.out, "  Rating: %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
	return nil
}

func (a *appEnv) productsCreate(ctx context.Context, svc *api.ProductService, args []string) error {
	fs := flag.NewFlagSet("products create", flag.ExitOnError)
	name := fs.String("name", "", "product name")
	description := fs.String("description", "", "product description")
	category := fs.String("category", "", "category, e.g. Vegetables")
	subcategory := fs.String("subcategory", "", "subcategory (optional)")
	price := fs.Float64("price", 0, "price per unit")
	unit := fs.String("unit", "", "unit of sale, e.g. kg")
	quantity := fs.Int("quantity", 0, "quantity in stock")
	minOrder := fs.Int("min-order", 0, "minimum order quantity (optional)")
	images := fs.String("images", "", "comma-separated image URLs (optional)")
	organic := fs.Bool("organic", false, "mark the product organic")
	city := fs.String("city", "", "product location city (optional)")
	country := fs.String("country", "", "product location country (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := api.CreateProductInput{
		Name:        *name,
		Description: *description,
		Category:    *category,
		Subcategory: *subcategory,
		Price:       *price,
		Unit:        *unit,
		Quantity:    *quantity,
		MinOrder:    *minOrder,
	}
	if *images != "" {
		for _, img := range strings.Split(*images, ",") {
			if trimmed := strings.TrimSpace(img); trimmed != "" {
				input.Images = append(input.Images, trimmed)
			}
		}
	}
	if *organic {
		input.Specifications = &api.Specifications{Organic: true}
	}
	if *city != "" || *country != "" {
		input.Location = &api.Location{City: *city, Country: *country}
	}

	if err := a.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid product details: %w", err)
	}

	p, err := svc.Create(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Listed %q as %s\n", p.Name, p.ID)
	return nil
}

func (a *appEnv) productsUpdate(ctx context.Context, svc *api.ProductService, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: ukulima products update <id> [flags]")
	}
	id, rest := args[0], args[1:]

	fs := flag.NewFlagSet("products update", flag.ExitOnError)
	name := fs.String("name", "", "new product name")
	description := fs.String("description", "", "new description")
	price := fs.Float64("price", 0, "new price per unit")
	quantity := fs.Int("quantity", -1, "new quantity in stock")
	available := fs.String("available", "", "set availability: true or false")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	var input api.UpdateProductInput
	if *name != "" {
		input.Name = name
	}
	if *description != "" {
		input.Description = description
	}
	if *price > 0 {
		input.Price = price
	}
	if *quantity >= 0 {
		input.Quantity = quantity
	}
	switch *available {
	case "":
	case "true", "false":
		v := *available == "true"
		input.IsAvailable = &v
	default:
		return fmt.Errorf("-available must be true or false")
	}

	p, err := svc.Update(ctx, id, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Updated %q\n", p.Name)
	return nil
}

func (a *appEnv) productsMine(ctx context.Context, svc *api.ProductService) error {
	products, err := svc.ListMine(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Fprintln(a.out, "You have no listings yet.")
		return nil
	}
	for _, p := range products {
		a.printProductLine(p)
	}
	return nil
}

func (a *appEnv) printProductLine(p api.Product) {
	stock := fmt.Sprintf("%d in stock", p.Quantity)
	if p.Quantity == 0 {
		stock = "out of stock"
	}
	fmt.Fprintf(a.out, "%s  %-30s %8.2f/%-6s %s (by %s)\n",
		p.ID, p.Name, p.Price, p.Unit, stock, p.Farmer.DisplayName())
}

func (a *appEnv) ordersCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ukulima orders <buy|purchases|sales> [flags]")
	}

	svc := api.NewOrderService(a.client)

	sub, rest := args[0], args[1:]
	switch sub {
	case "buy":
		return a.ordersBuy(ctx, svc, rest)
	case "purchases":
		orders, err := svc.MyPurchases(ctx)
		if err != nil {
			return err
		}
		a.printOrders(orders, "You have no purchases yet.")
		return nil
	case "sales":
		orders, err := svc.MySales(ctx)
		if err != nil {
			return err
		}
		a.printOrders(orders, "You have no sales yet.")
		return nil
	default:
		return fmt.Errorf("unknown orders subcommand %q", sub)
	}
}

func (a *appEnv) ordersBuy(ctx context.Context, svc *api.OrderService, args []string) error {
	fs := flag.NewFlagSet("orders buy", flag.ExitOnError)
	product := fs.String("product", "", "product id to order")
	quantity := fs.Int("quantity", 0, "quantity to order")
	price := fs.Float64("price", 0, "agreed per-unit price")
	address := fs.String("address", "", "shipping street address")
	city := fs.String("city", "", "shipping city")
	country := fs.String("country", "", "shipping country")
	phone := fs.String("phone", "", "contact phone number")
	method := fs.String("method", "cod", "payment method: stripe, mpesa, or cod")
	if err := fs.Parse(args); err != nil {
		return err
	}

	input := api.CreateOrderInput{
		Items: []api.OrderItemInput{{
			Product:  *product,
			Quantity: *quantity,
			Price:    *price,
		}},
		ShippingAddress: api.ShippingAddress{
			Address: *address,
			City:    *city,
			Country: *country,
			Phone:   *phone,
		},
		Payment: api.Payment{Method: *method, Status: "pending"},
	}

	if err := a.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid order details: %w", err)
	}

	order, err := svc.Create(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Order %s placed, total %.2f (%s)\n", order.OrderNumber, order.TotalAmount, order.Status)
	return nil
}

func (a *appEnv) printOrders(orders []api.Order, emptyMsg string) {
	if len(orders) == 0 {
		fmt.Fprintln(a.out, emptyMsg)
		return
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%s  %-10s %8.2f  %d item(s)  %s -> %s\n",
			o.OrderNumber, o.Status, o.TotalAmount, len(o.Items),
			o.Seller.DisplayName(), o.Buyer.DisplayName())
	}
}
