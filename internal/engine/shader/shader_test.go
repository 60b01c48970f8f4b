package shader

import "testing"

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"nul terminated", []byte("ERROR: 0:3: 'x' : undeclared\n\x00\x00"), "ERROR: 0:3: 'x' : undeclared"},
		{"no terminator", []byte("  warning  "), "warning"},
		{"empty", []byte{0}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := infoLog(tt.buf); got != tt.want {
				t.Errorf("infoLog = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniformUnknown(t *testing.T) {
	p := &Program{uniforms: map[string]int32{"uMVP": 3}}
	if got := p.Uniform("uMVP"); got != 3 {
		t.Errorf("Uniform(uMVP) = %d, want 3", got)
	}
	if got := p.Uniform("uMissing"); got != -1 {
		t.Errorf("Uniform(uMissing) = %d, want -1", got)
	}
}

func TestStages(t *testing.T) {
	v, f := Vertex("v"), Fragment("f")
	if v.Name != "vertex" || v.Source != "v" || f.Name != "fragment" || f.Source != "f" {
		t.Errorf("unexpected stages %+v %+v", v, f)
	}
	if v.Type == f.Type {
		t.Error("vertex and fragment stages share a shader type")
	}
}
