// Package foundryid generates the identifiers Foundry VTT uses to tag
// documents and embedded entries.
//
// An identifier is 16 characters drawn uniformly from A-Z, a-z and 0-9.
// Identifiers are cosmetic in an imported playlist: Foundry reassigns
// conflicting ids on import, so the generator makes no uniqueness guarantee
// and is not cryptographically strong.
//
// A Generator owns its random source. Create one per process and pass it to
// whatever needs identifiers:
//
//	ids, err := foundryid.NewFromEntropy()
//	if err != nil {
//	    return err
//	}
//	folder := ids.New()
//
// Tests can use NewGenerator with a fixed-seed source for reproducible output.
package foundryid
