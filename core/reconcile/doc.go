// Package reconcile decides, scan by scan, which manifest row a scanned token
// accounts for, and projects the resulting history into a report.
//
// # Components
//
//   - Resolver: finds every manifest row whose barcode, box number, shipment ID
//     or shipment number matches a token (shipment numbers also match by
//     containment). Index keeps the normalized fields of a manifest.
//   - Classify: maps a row's free-text status to a canonical category.
//   - Engine: consumes the first unconsumed matching row in manifest order, or
//     records the scan as excess. It talks to session state through Tracker.
//   - BuildReport / ComputeStats: read-only projections of a session.
//   - Filter: expr-lang expressions over scan history.
//
// # Consumption
//
// Several rows may share one shipment ID. Successive scans of that ID consume
// the rows top to bottom; once all are consumed further scans are excess,
// exactly like a scan that matches nothing.
//
// # Usage
//
//	engine := reconcile.NewEngine(sess, notifier, logger)
//	out := engine.Submit("4600000000017")
//	if out.Kind == reconcile.OutcomeMatched {
//	    fmt.Println(out.Event.ResolvedStatus)
//	}
package reconcile
