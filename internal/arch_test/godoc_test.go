package arch_test

import (
	"go/ast"
	"strings"
	"testing"
)

// documented reports whether doc starts with name, as GoDoc expects.
func documented(name string, docs ...*ast.CommentGroup) bool {
	for _, d := range docs {
		if d != nil && strings.HasPrefix(strings.TrimSpace(d.Text()), name) {
			return true
		}
	}
	return false
}

// receiverExported reports whether a method belongs to an exported type,
// looking through pointers and type parameters.
func receiverExported(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.IsExported()
	case *ast.StarExpr:
		return receiverExported(e.X)
	case *ast.IndexExpr:
		return receiverExported(e.X)
	case *ast.IndexListExpr:
		return receiverExported(e.X)
	}
	return false
}

// undocumented lists the exported identifiers in f that lack GoDoc. Values
// inside a parenthesized block may lean on the block comment or an inline
// comment instead.
func undocumented(f *ast.File) []*ast.Ident {
	var out []*ast.Ident
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if !d.Name.IsExported() {
				continue
			}
			if d.Recv != nil && !receiverExported(d.Recv.List[0].Type) {
				continue
			}
			if !documented(d.Name.Name, d.Doc) {
				out = append(out, d.Name)
			}
		case *ast.GenDecl:
			grouped := d.Lparen.IsValid()
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					if s.Name.IsExported() && !documented(s.Name.Name, s.Doc, d.Doc) {
						out = append(out, s.Name)
					}
				case *ast.ValueSpec:
					for _, n := range s.Names {
						if !n.IsExported() {
							continue
						}
						if grouped && (d.Doc != nil || s.Doc != nil || s.Comment != nil) {
							continue
						}
						if !documented(n.Name, s.Doc, d.Doc) {
							out = append(out, n)
						}
					}
				}
			}
		}
	}
	return out
}

func TestExportedAPIIsDocumented(t *testing.T) {
	t.Parallel()

	for _, p := range loadInternal(t) {
		if !packageDocumented(p) {
			t.Errorf("package %s has no package comment", p.name)
		}
		for _, f := range p.files {
			for _, id := range undocumented(f) {
				t.Errorf("%s: exported %s has no GoDoc comment", p.fset.Position(id.Pos()), id.Name)
			}
		}
	}
}

func packageDocumented(p pkgSource) bool {
	for _, f := range p.files {
		if documented("Package "+p.name, f.Doc) {
			return true
		}
	}
	return false
}
