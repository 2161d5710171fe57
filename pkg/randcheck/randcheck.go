// Package randcheck определяет анализатор, который запрещает перемешивание
// через math/rand и math/rand/v2 в обход пакета shuffle.
package randcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Analyzer обнаруживает вызовы rand.Shuffle и rand.Perm.
var Analyzer = &analysis.Analyzer{
	Name: "randcheck",
	Doc:  "detects shuffling with the global math/rand generators instead of the shuffle package",
	Run:  run,
}

var randPackages = map[string]struct{}{
	"math/rand":    {},
	"math/rand/v2": {},
}

var forbidden = map[string]struct{}{
	"Shuffle": {},
	"Perm":    {},
}

func run(pass *analysis.Pass) (any, error) {
	for _, file := range pass.Files {
		ast.Inspect(file, func(node ast.Node) bool {
			call, ok := node.(*ast.CallExpr)
			if !ok {
				return true
			}
			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if fn := globalRandFunc(pass, sel); fn != nil {
				pass.Reportf(call.Pos(),
					"%s.%s bypasses the shuffle package, use shuffle.InPlace or shuffle.NewArray",
					fn.Pkg().Path(), fn.Name())
			}
			return true
		})
	}

	return nil, nil
}

// globalRandFunc возвращает функцию пакета math/rand или math/rand/v2 из
// списка forbidden; методы rand.Rand не учитываются.
func globalRandFunc(pass *analysis.Pass, sel *ast.SelectorExpr) *types.Func {
	fn, ok := pass.TypesInfo.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return nil
	}
	if _, ok := randPackages[fn.Pkg().Path()]; !ok {
		return nil
	}
	if _, ok := forbidden[fn.Name()]; !ok {
		return nil
	}
	if sig, ok := fn.Type().(*types.Signature); !ok || sig.Recv() != nil {
		return nil
	}
	return fn
}
