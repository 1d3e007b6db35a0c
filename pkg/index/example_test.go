package index_test

import (
	"fmt"

	"github.com/matzehuels/dpkgview/pkg/control"
	"github.com/matzehuels/dpkgview/pkg/index"
)

func ExampleQuery() {
	records := control.Parse(`Package: alpha
Description: short alpha
 long alpha text
Depends: beta (>= 1.0), gamma

Package: beta
Description: short beta`)

	alpha := index.Query(records, "alpha")
	fmt.Println(alpha.Depends)

	beta := index.Query(records, "beta")
	fmt.Println(beta.Dependents)
	// Output:
	// [{beta true} {gamma false}]
	// [alpha]
}

func ExampleNames() {
	records := control.Parse("Package: b\n\nPackage: a\n\nPackage: b")
	fmt.Println(index.Names(records))
	// Output: [b a b]
}
