package pycheck

import (
	"context"
	"testing"

	"javapy/internal/lexer"
	"javapy/internal/source"
	"javapy/internal/translator"
)

func TestCheckValid(t *testing.T) {
	r := Check("x = 5\nwhile x > 0:\n    print(\"n: \" + str(x))\n    x -= 1\n")
	if !r.OK || r.Statements != 2 {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.String() != "ok (2 statements)" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestCheckEmpty(t *testing.T) {
	if r := Check("  \n"); !r.OK || r.Statements != 0 {
		t.Fatalf("empty output must pass: %+v", r)
	}
}

func TestCheckSyntaxError(t *testing.T) {
	r := Check("x = 1\nif x > :\n    pass\n")
	if r.OK || r.Err == nil {
		t.Fatalf("expected failure, got %+v", r)
	}
	if r.String() == "" {
		t.Fatal("failure must render")
	}
}

func TestTranslatedProgramParses(t *testing.T) {
	src := `int contador = 3;
String nombre = "Ana";
boolean activo = true;
for (int i = 0; i < 5; i++) {
    if (i == 2) {
        System.out.println("dos");
    } else if (i > 3) {
        System.out.print(i);
    } else {
        contador += i;
    }
}
while (contador > 0 && activo) {
    System.out.println("Hola " + nombre + " " + contador);
    contador--;
}
System.out.println();
`
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.java", []byte(src))
	toks := lexer.Scan(fs.Get(id), lexer.Options{})
	res := translator.New(translator.Options{}).Translate(context.Background(), toks)
	if len(res.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics)
	}
	if r := Check(res.Output); !r.OK {
		t.Fatalf("generated code does not parse: %v\n%s", r, res.Output)
	}
}
