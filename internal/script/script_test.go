package script

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunStringReturnsKeymaps(t *testing.T) {
	km, err := RunString(`
		return {
			normal = { ["q"] = "x", ["Q"] = "D" },
			visual = { ["s"] = "y" },
		}
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if km.Normal["q"] != "x" || km.Normal["Q"] != "D" {
		t.Errorf("normal = %v", km.Normal)
	}
	if km.Visual["s"] != "y" {
		t.Errorf("visual = %v", km.Visual)
	}
}

func TestRunStringNoReturn(t *testing.T) {
	km, err := RunString(`local x = 1 + 1`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if len(km.Normal) != 0 || len(km.Visual) != 0 {
		t.Errorf("expected empty keymaps, got %v", km)
	}
}

func TestRunStringCanComputeKeys(t *testing.T) {
	km, err := RunString(`
		local maps = { normal = {} }
		for i, k in ipairs({"q", "w"}) do
			maps.normal[k] = "x"
		end
		return maps
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	if km.Normal["q"] != "x" || km.Normal["w"] != "x" {
		t.Errorf("normal = %v", km.Normal)
	}
}

func TestRunStringSyntaxError(t *testing.T) {
	if _, err := RunString(`return {`); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestRunStringSandbox(t *testing.T) {
	km, err := RunString(`
		if os ~= nil or io ~= nil then
			error("unsafe libraries exposed")
		end
		return { normal = {} }
	`)
	if err != nil {
		t.Fatalf("RunString: %v", err)
	}
	_ = km
}

func TestRunFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	src := `return { normal = { ["g"] = "0" } }`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	km, err := RunFile(path)
	if err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if km.Normal["g"] != "0" {
		t.Errorf("normal = %v", km.Normal)
	}
}

func TestRunFileMissing(t *testing.T) {
	if _, err := RunFile(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
