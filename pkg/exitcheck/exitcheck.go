package exitcheck

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
)

// Analyzer обнаруживает вызов os.Exit в функции main пакета main.
var Analyzer = &analysis.Analyzer{
	Name: "exitcheck",
	Doc:  "detects the use os.Exit in the main func",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv != nil || fn.Name.Name != "main" || fn.Body == nil {
				continue
			}
			ast.Inspect(fn.Body, func(node ast.Node) bool {
				if x, ok := node.(*ast.SelectorExpr); ok && isOSExit(pass, x) {
					pass.Reportf(x.Pos(), "calling os.Exit in main")
				}
				return true
			})
		}
	}

	return nil, nil
}

func isOSExit(pass *analysis.Pass, x *ast.SelectorExpr) bool {
	fn, ok := pass.TypesInfo.Uses[x.Sel].(*types.Func)
	return ok && fn.Pkg() != nil && fn.Pkg().Path() == "os" && fn.Name() == "Exit"
}
