package example_test

import (
	"fmt"

	"shapecast/caster"
	"shapecast/diagnostic"
	"shapecast/relabel"
	"shapecast/shape"
	"shapecast/store"
	"shapecast/warehouse"
)

func init() {
	relabel.MustRegister[warehouse.InboundAddress]("warehouse.InboundAddress")
	relabel.MustRegister[store.Address]("store.Address")
}

// Example walks one inbound feed row through the three casting strategies:
// the recursive caster for safety, the shape caster for repeated
// conversions of a stable row shape, and the relabeler for byte-level
// reclassification of interchangeable address snapshots.
func Example() {
	row := warehouse.InboundOrder{
		ID:         311,
		Number:     "WH-311",
		Status:     "paid",
		TotalCents: 4350,
		Shipping:   warehouse.InboundAddress{Street: "9 Quay St", City: "Hull", PostalCode: "HU1"},
	}

	order, err := caster.Cast[store.Order](row)
	fmt.Println(err, order.Number, order.Status, order.Shipping.Zip)

	products, err := shape.For[store.Product](false)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, raw := range []map[string]any{
		{"ID": int64(1), "SKU": "A-1", "Name": "Pallet", "Description": "", "PriceCents": int64(900), "Inventory": 14, "CreatedAt": order.OrderedAt},
		{"ID": int64(2), "SKU": "A-2", "Name": "Crate", "Description": "", "PriceCents": int64(350), "Inventory": 3, "CreatedAt": order.OrderedAt},
	} {
		p := products.Cast(raw).(store.Product)
		fmt.Println(p.SKU, p.Name, p.PriceCents, p.Inventory)
	}

	relabeled, err := relabel.Cast(row.Shipping, "store.Address", relabel.Allow())
	addr := relabeled.(store.Address)
	fmt.Println(err, addr.Street, addr.City)

	var sink diagnostic.Diagnostics
	customer, err := caster.Cast[store.Customer](
		map[string]any{"Email": "ops@hull.example", "FullName": "Dock Ops", "Carrier": "sea"},
		caster.WithPolicy(caster.PolicyDynamicAssign),
		caster.WithDiagnostics(&sink),
		caster.WithConstructor(),
	)
	fmt.Println(err, customer.IsActive, customer.Extra["Carrier"], len(sink.Warnings))

	// Output:
	// <nil> WH-311 paid HU1
	// A-1 Pallet 900 14
	// A-2 Crate 350 3
	// <nil> 9 Quay St Hull
	// <nil> true sea 0
}
