package formats

import (
	"os"
	"strings"
	"testing"
)

func TestParseYAMLItems(t *testing.T) {
	data := []byte(`
id: hut
entities:
  - name: Box
    at: [1, 2]
    dialogue:
      - text: by reference
        reward: key
      - text: inline
        reward: {id: lamp, name: Oil lamp}
`)
	yl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error: %v", err)
	}
	nodes := yl.Entities[0].Dialogue
	if r := nodes[0].Reward; r == nil || r.Ref != "key" || r.Name != "" {
		t.Errorf("reference reward = %+v", r)
	}
	if r := nodes[1].Reward; r == nil || r.Ref != "" || r.ID != "lamp" || r.Name != "Oil lamp" {
		t.Errorf("inline reward = %+v", r)
	}
}

func TestLayers(t *testing.T) {
	yl := YAMLLevel{
		Legend: map[string]YAMLLegend{
			".": {Ground: "grass"},
			"#": {Ground: "grass", Foreground: "wall", Overlay: "ivy"},
		},
		Map: []string{".#", "#."},
	}
	g, f, o, err := yl.Layers()
	if err != nil {
		t.Fatalf("Layers() error: %v", err)
	}
	if g[0][0] != "grass" || f[0][1] != "wall" || o[1][0] != "ivy" || f[1][1] != "" {
		t.Errorf("layers = %v %v %v", g, f, o)
	}

	yl.Map = []string{".x"}
	if _, _, _, err := yl.Layers(); err == nil || !strings.Contains(err.Error(), "1,0") {
		t.Errorf("unknown character error = %v", err)
	}
}

func TestParseYAMLWorld(t *testing.T) {
	w, err := ParseYAMLWorld([]byte("title: T\nstart: s\nitems:\n  key: {name: Key}\n"))
	if err != nil {
		t.Fatalf("ParseYAMLWorld() error: %v", err)
	}
	if w.Title != "T" || w.Start != "s" || w.Items["key"].Name != "Key" {
		t.Errorf("world = %+v", w)
	}
	if _, err := ParseYAMLWorld([]byte("items: [")); err == nil {
		t.Error("broken document accepted")
	}
}

func TestParseTMX(t *testing.T) {
	layers, err := ParseTMX(os.DirFS("../testdata/pack"), "cellar.tmx")
	if err != nil {
		t.Fatalf("ParseTMX() error: %v", err)
	}
	if layers.Width != 11 || layers.Height != 11 {
		t.Fatalf("size = %dx%d", layers.Width, layers.Height)
	}
	if layers.Ground[3][3] != "flagstone" || layers.Foreground[0][0] != "brick-wall" || layers.Foreground[5][0] != "" {
		t.Errorf("tags: ground=%q fg=%q door=%q", layers.Ground[3][3], layers.Foreground[0][0], layers.Foreground[5][0])
	}
	if _, err := ParseTMX(os.DirFS("../testdata/pack"), "missing.tmx"); err == nil {
		t.Error("missing file accepted")
	}
}
