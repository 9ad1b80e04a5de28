// Package document builds and writes Foundry VTT playlist documents.
//
// A document is one playlist folder holding a sound per audio file. Sound
// paths are stored relative to Foundry's user-data root with forward
// slashes, which is what the Foundry server resolves them against regardless
// of the host operating system.
//
// Serialization goes through encoding/json, so names and paths containing
// quotes, backslashes or control characters are escaped correctly.
//
// Usage:
//
//	w := document.NewWriter(ids, document.WithMetadata(cfg.Metadata))
//	result, err := w.Write("/foundrydata/Data", resolved, "/out/MyList.json")
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("SUCCESS: Wrote %d items to %s\n", result.Count, result.Path)
package document
