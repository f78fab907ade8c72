// Package crosstab loads labelled survey data files, attaches variable
// metadata, recodes ordinal categorical columns, and normalizes columns
// across survey waves for exploratory analysis.
//
// Usage:
//
//	res, err := load.Load("nzes2014.dta")
//	scale, _ := recode.NewScale(map[string]float64{
//	    "Left": 0, "Centre": 5, "Right": 10,
//	}, "Don't know")
//	scores, err := recode.Recode(res.Table, "selfplacement", scale)
//
// The library never renders anything itself. The render package produces
// chart and table structures for an external presentation layer, and the
// loaders delegate the binary file formats to external reader libraries.
// All computation is local and synchronous.
package crosstab
