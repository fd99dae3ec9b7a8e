package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Bold, Title, Score, Small} {
		if name.Get() == nil {
			t.Errorf("expected face for %s", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("expected parse error")
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
