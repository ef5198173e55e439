package domain

import "testing"

func TestOptional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     Optional[string]
		wantVal string
		wantSet bool
	}{
		{name: "zero value is none", opt: Optional[string]{}, wantSet: false},
		{name: "none", opt: None[string](), wantSet: false},
		{name: "some empty", opt: Some(""), wantVal: "", wantSet: true},
		{name: "some value", opt: Some("x"), wantVal: "x", wantSet: true},
		{name: "from nil pointer", opt: FromPtr[string](nil), wantSet: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, ok := tt.opt.Get()
			if v != tt.wantVal || ok != tt.wantSet {
				t.Errorf("Get() = (%q, %v), want (%q, %v)", v, ok, tt.wantVal, tt.wantSet)
			}
			if tt.opt.IsSet() != tt.wantSet {
				t.Errorf("IsSet() = %v, want %v", tt.opt.IsSet(), tt.wantSet)
			}
		})
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	n := int64(4)
	v, ok := FromPtr(&n).Get()
	if !ok || v != 4 {
		t.Errorf("FromPtr(&4).Get() = (%d, %v), want (4, true)", v, ok)
	}
}
