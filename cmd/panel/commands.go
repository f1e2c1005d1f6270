package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/panel-minorista/internal/application/analytics"
	"github.com/jhoicas/panel-minorista/internal/application/auth"
	"github.com/jhoicas/panel-minorista/internal/application/dto"
	"github.com/jhoicas/panel-minorista/internal/application/inventory"
	"github.com/jhoicas/panel-minorista/internal/application/navigation"
	"github.com/jhoicas/panel-minorista/internal/application/store"
	"github.com/jhoicas/panel-minorista/internal/application/theme"
	"github.com/jhoicas/panel-minorista/internal/domain/entity"
)

var errNoSession = errors.New("no hay sesión activa: ejecute `panel login <usuario> <contraseña>`")

// panel agrupa la sesión y los stores que usan los comandos.
type panel struct {
	session   *auth.Session
	products  *store.ProductStore
	sales     *store.SaleStore
	purchases *store.PurchaseStore
	dashboard *analytics.DashboardUseCase
	report    *analytics.ReportUseCase
	replenish *inventory.ReplenishmentUseCase
	theme     *theme.Service
	out       io.Writer
	now       func() time.Time
}

type command struct {
	usage string
	auth  bool
	run   func(p *panel, ctx context.Context, args []string) error
}

// commands se llena en init: los handlers consultan el mapa para su ayuda.
var commands map[string]command

func init() {
	commands = map[string]command{
		"login":          {"login <usuario> <contraseña>", false, (*panel).login},
		"logout":         {"logout", false, (*panel).logout},
		"whoami":         {"whoami", true, (*panel).whoami},
		"menu":           {"menu", true, (*panel).menu},
		"products":       {"products [-q texto] [-low]", true, (*panel).listProducts},
		"add-product":    {"add-product -name N -category C [-stock 0] [-unit unidades] [-price 0] [-min 0] [-supplier S] [-desc D]", true, (*panel).addProduct},
		"update-product": {"update-product <id> [-name N] [-category C] [-stock N] [-unit U] [-price P] [-min N] [-supplier S] [-desc D]", true, (*panel).updateProduct},
		"delete-product": {"delete-product <id>", true, (*panel).deleteProduct},
		"sales":          {"sales", true, (*panel).listSales},
		"add-sale":       {"add-sale -customer C -payment Efectivo|Tarjeta|Transferencia -item producto:cantidad:precio ...", true, (*panel).addSale},
		"purchases":      {"purchases", true, (*panel).listPurchases},
		"add-purchase":   {"add-purchase -supplier S [-status Pendiente|Completada|Cancelada] -item producto:cantidad:costo ...", true, (*panel).addPurchase},
		"dashboard":      {"dashboard", true, (*panel).showDashboard},
		"report":         {"report [-out reporte.pdf]", true, (*panel).exportReport},
		"replenish":      {"replenish [-draft]", true, (*panel).showReplenishment},
		"theme":          {"theme [light|dark|system]", false, (*panel).setTheme},
	}
}

// run despacha args[0] a su comando.
func (p *panel) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		p.usage()
		return errors.New("falta el comando")
	}
	cmd, ok := commands[args[0]]
	if !ok {
		p.usage()
		return fmt.Errorf("comando desconocido: %s", args[0])
	}
	if cmd.auth && p.session.State() != auth.StateAuthenticated {
		return errNoSession
	}
	return cmd.run(p, ctx, args[1:])
}

func (p *panel) usage() {
	fmt.Fprintln(p.out, "Uso: panel <comando> [opciones]")
	for _, name := range []string{"login", "logout", "whoami", "menu", "products", "add-product", "update-product",
		"delete-product", "sales", "add-sale", "purchases", "add-purchase", "dashboard", "report", "replenish", "theme"} {
		fmt.Fprintln(p.out, "  "+commands[name].usage)
	}
}

// ── Sesión ────────────────────────────────────────────────────────────────────

func (p *panel) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("uso: " + commands["login"].usage)
	}
	form := (&dto.LoginForm{}).SetUsername(args[0]).SetPassword(args[1])
	req, err := form.Build()
	if err != nil {
		return err
	}
	u, err := p.session.Login(ctx, req.Username, req.Password)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Bienvenido, %s (%s)\n", u.FullName(), u.Role)
	return nil
}

func (p *panel) logout(ctx context.Context, _ []string) error {
	if err := p.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(p.out, "Sesión cerrada")
	return nil
}

func (p *panel) whoami(_ context.Context, _ []string) error {
	u, _ := p.session.User()
	fmt.Fprintf(p.out, "%s <%s> %s\n", u.FullName(), u.Email, u.Role)
	return nil
}

func (p *panel) menu(_ context.Context, _ []string) error {
	u, _ := p.session.User()
	for _, it := range navigation.ForRole(u.Role) {
		fmt.Fprintf(p.out, "%-15s %s\n", it.Title, it.Href)
	}
	return nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (p *panel) loadProducts(ctx context.Context) error {
	p.products.Mount(ctx)
	if msg := p.products.Error(); msg != "" {
		return errors.New(msg)
	}
	return nil
}

func (p *panel) listProducts(ctx context.Context, args []string) error {
	fs := newFlagSet("products")
	q := fs.String("q", "", "buscar por nombre o categoría")
	low := fs.Bool("low", false, "solo stock bajo o crítico")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := p.loadProducts(ctx); err != nil {
		return err
	}
	items := p.products.Search(*q)
	if *low {
		items = filterLow(items)
	}
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNombre\tCategoría\tStock\tMín\tPrecio\tEstado")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d %s\t%d\t%s\t%s\n",
			it.ID, it.Name, it.Category, it.Stock, it.Unit, it.MinStock, it.Price.StringFixed(2), it.Status())
	}
	return w.Flush()
}

func filterLow(items []entity.Product) []entity.Product {
	out := items[:0:0]
	for _, it := range items {
		if it.Status() != entity.StockNormal {
			out = append(out, it)
		}
	}
	return out
}

func (p *panel) addProduct(ctx context.Context, args []string) error {
	fs := newFlagSet("add-product")
	name := fs.String("name", "", "nombre")
	category := fs.String("category", "", "categoría")
	stock := fs.Int("stock", 0, "stock")
	unit := fs.String("unit", "unidades", "unidad")
	price := fs.String("price", "0", "precio")
	minStock := fs.Int("min", 0, "stock mínimo")
	supplier := fs.String("supplier", "", "proveedor")
	desc := fs.String("desc", "", "descripción")
	if err := fs.Parse(args); err != nil {
		return err
	}
	pr, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("precio inválido %q", *price)
	}
	in, err := dto.NewProductForm().
		SetName(*name).SetCategory(*category).SetStock(*stock).SetUnit(*unit).
		SetPrice(pr).SetMinStock(*minStock).SetSupplier(*supplier).SetDescription(*desc).
		Build()
	if err != nil {
		return err
	}
	if err := p.loadProducts(ctx); err != nil {
		return err
	}
	created, err := p.products.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Producto creado: %s (%s)\n", created.Name, created.ID)
	return nil
}

func (p *panel) updateProduct(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return errors.New("uso: " + commands["update-product"].usage)
	}
	id := args[0]
	fs := newFlagSet("update-product")
	name := fs.String("name", "", "nombre")
	category := fs.String("category", "", "categoría")
	stock := fs.Int("stock", 0, "stock")
	unit := fs.String("unit", "", "unidad")
	price := fs.String("price", "", "precio")
	minStock := fs.Int("min", 0, "stock mínimo")
	supplier := fs.String("supplier", "", "proveedor")
	desc := fs.String("desc", "", "descripción")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var patch dto.ProductPatch
	var perr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "category":
			patch.Category = category
		case "stock":
			patch.Stock = stock
		case "unit":
			patch.Unit = unit
		case "price":
			d, err := decimal.NewFromString(*price)
			if err != nil {
				perr = fmt.Errorf("precio inválido %q", *price)
				return
			}
			patch.Price = &d
		case "min":
			patch.MinStock = minStock
		case "supplier":
			patch.Supplier = supplier
		case "desc":
			patch.Description = desc
		}
	})
	if perr != nil {
		return perr
	}
	if err := p.loadProducts(ctx); err != nil {
		return err
	}
	updated, err := p.products.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Producto actualizado: %s, stock %d (%s)\n", updated.Name, updated.Stock, updated.Status())
	return nil
}

func (p *panel) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("uso: " + commands["delete-product"].usage)
	}
	if err := p.loadProducts(ctx); err != nil {
		return err
	}
	if err := p.products.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Producto %s eliminado\n", args[0])
	return nil
}

// ── Ventas y compras ──────────────────────────────────────────────────────────

func (p *panel) listSales(ctx context.Context, _ []string) error {
	p.sales.Mount(ctx)
	if msg := p.sales.Error(); msg != "" {
		return errors.New(msg)
	}
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFecha\tCliente\tMedio\tÍtems\tTotal")
	for _, s := range p.sales.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", s.ID, s.Date, s.Customer, s.PaymentMethod, len(s.Items), s.Total.StringFixed(2))
	}
	return w.Flush()
}

func (p *panel) addSale(ctx context.Context, args []string) error {
	fs := newFlagSet("add-sale")
	customer := fs.String("customer", "", "cliente")
	payment := fs.String("payment", string(entity.PaymentCash), "medio de pago")
	var items lineFlag
	fs.Var(&items, "item", "producto:cantidad:precio (repetible)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	form := dto.NewSaleForm().SetCustomer(*customer).SetPaymentMethod(entity.PaymentMethod(*payment))
	for i, l := range items {
		if i > 0 {
			form.AddItem()
		}
		form.SetItemProduct(i, l.product).SetItemQuantity(i, l.quantity).SetItemUnitPrice(i, l.amount)
	}
	in, err := form.Build(p.now())
	if err != nil {
		return err
	}
	p.sales.Mount(ctx)
	created, err := p.sales.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Venta registrada: %s por %s\n", created.ID, created.Total.StringFixed(2))
	return nil
}

func (p *panel) listPurchases(ctx context.Context, _ []string) error {
	p.purchases.Mount(ctx)
	if msg := p.purchases.Error(); msg != "" {
		return errors.New(msg)
	}
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFecha\tProveedor\tEstado\tÍtems\tTotal")
	for _, pu := range p.purchases.Items() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", pu.ID, pu.Date, pu.Supplier, pu.Status, len(pu.Items), pu.Total.StringFixed(2))
	}
	return w.Flush()
}

func (p *panel) addPurchase(ctx context.Context, args []string) error {
	fs := newFlagSet("add-purchase")
	supplier := fs.String("supplier", "", "proveedor")
	status := fs.String("status", string(entity.PurchasePending), "estado")
	var items lineFlag
	fs.Var(&items, "item", "producto:cantidad:costo (repetible)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	form := dto.NewPurchaseForm().SetSupplier(*supplier).SetStatus(entity.PurchaseStatus(*status))
	for i, l := range items {
		if i > 0 {
			form.AddItem()
		}
		form.SetItemProduct(i, l.product).SetItemQuantity(i, l.quantity).SetItemUnitCost(i, l.amount)
	}
	in, err := form.Build(p.now())
	if err != nil {
		return err
	}
	p.purchases.Mount(ctx)
	created, err := p.purchases.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Compra registrada: %s por %s\n", created.ID, created.Total.StringFixed(2))
	return nil
}

// ── Dashboard y reportes ──────────────────────────────────────────────────────

func (p *panel) showDashboard(ctx context.Context, _ []string) error {
	s, err := p.dashboard.GetSummary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Productos: %d (%d unidades en stock)\n", s.TotalProducts, s.TotalStockUnits)
	fmt.Fprintf(p.out, "Ventas: %d por %s\n", s.SalesCount, s.SalesTotal.StringFixed(2))
	fmt.Fprintf(p.out, "Compras pendientes: %d por %s\n", s.PendingPurchases, s.PendingAmount.StringFixed(2))

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "\nStock bajo\tStock\tMín\tEstado")
	for _, l := range s.LowStock {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", l.Name, l.Stock, l.MinStock, l.Status)
	}
	fmt.Fprintln(w, "\nMás vendidos\tUnidades\tIngreso\t")
	for _, t := range s.TopProducts {
		fmt.Fprintf(w, "%s\t%d\t%s\t\n", t.Name, t.Units, t.Revenue.StringFixed(2))
	}
	return w.Flush()
}

func (p *panel) exportReport(ctx context.Context, args []string) error {
	fs := newFlagSet("report")
	out := fs.String("out", "reporte.pdf", "archivo PDF de salida")
	if err := fs.Parse(args); err != nil {
		return err
	}
	u, _ := p.session.User()
	pdf, err := p.report.ExportPDF(ctx, dto.ReportMeta{
		Title:       "Reporte del panel",
		GeneratedBy: u.FullName(),
		GeneratedAt: p.now(),
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", *out, err)
	}
	fmt.Fprintf(p.out, "Reporte generado: %s (%d bytes)\n", *out, len(pdf))
	return nil
}

// showReplenishment imprime la lista de reposición; con -draft registra una compra
// Pendiente por proveedor.
func (p *panel) showReplenishment(ctx context.Context, args []string) error {
	fs := newFlagSet("replenish")
	draft := fs.Bool("draft", false, "crear compras pendientes por proveedor")
	if err := fs.Parse(args); err != nil {
		return err
	}
	list, err := p.replenish.GenerateReplenishmentList(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(p.out, "Sin productos para reponer")
		return nil
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tProducto\tProveedor\tStock\tMín\tPedir\tCosto est.\tMargen %")
	for _, s := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n", s.Priority, s.ProductName, s.Supplier,
			s.CurrentStock, s.MinStock, s.SuggestedOrderQty, s.EstimatedOrderCost.StringFixed(2), s.GrossMarginPct.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if !*draft {
		return nil
	}

	drafts, err := inventory.DraftPurchases(list, p.now())
	if err != nil {
		return err
	}
	p.purchases.Mount(ctx)
	for _, in := range drafts {
		created, err := p.purchases.Create(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Compra pendiente %s: %s por %s\n", created.ID, created.Supplier, created.Total.StringFixed(2))
	}
	return nil
}

func (p *panel) setTheme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		t, err := p.theme.Get(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "Tema: %s\n", t)
		return nil
	}
	if err := p.theme.Set(ctx, theme.Theme(args[0])); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "Tema guardado: %s\n", args[0])
	return nil
}

// ── Flags ─────────────────────────────────────────────────────────────────────

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

type line struct {
	product  string
	quantity int
	amount   decimal.Decimal
}

// lineFlag acumula -item producto:cantidad:monto. El producto puede contener ':'.
type lineFlag []line

func (l *lineFlag) String() string { return fmt.Sprintf("%d ítems", len(*l)) }

func (l *lineFlag) Set(v string) error {
	parts := strings.Split(v, ":")
	if len(parts) < 3 {
		return fmt.Errorf("ítem %q: formato producto:cantidad:monto", v)
	}
	n := len(parts)
	qty, err := strconv.Atoi(parts[n-2])
	if err != nil {
		return fmt.Errorf("ítem %q: cantidad inválida", v)
	}
	amount, err := decimal.NewFromString(parts[n-1])
	if err != nil {
		return fmt.Errorf("ítem %q: monto inválido", v)
	}
	*l = append(*l, line{product: strings.Join(parts[:n-2], ":"), quantity: qty, amount: amount})
	return nil
}
