package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/glyphid/catalog"
)

// ExampleCatalogue_Lookup decodes a known identifier into its Symbol.
func ExampleCatalogue_Lookup() {
	c := catalog.Default()

	sym, err := c.Lookup(catalog.Encode("latex2e", "OT1", `\alpha`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s (%s/%s) math=%v text=%v\n", sym.Command, sym.Package, sym.FontEncoding, sym.MathMode, sym.TextMode)
	// Output:
	// \alpha (latex2e/OT1) math=true text=false
}
