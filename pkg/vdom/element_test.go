package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("merges children under reserved key", func(t *testing.T) {
		el := CreateElement("div", []Attr{{Key: "id", Value: "main"}}, "x", 3)
		if el.Type != "div" {
			t.Errorf("Type = %v, want div", el.Type)
		}
		children := el.Children()
		if len(children) != 2 || children[0] != "x" || children[1] != 3 {
			t.Errorf("Children = %v", children)
		}
		if v, _ := el.Props.Get("id"); v != "main" {
			t.Errorf("id = %v", v)
		}
		last := el.Props[len(el.Props)-1]
		if last.Key != ChildrenKey {
			t.Errorf("last prop = %q, want children", last.Key)
		}
	})

	t.Run("nil attributes", func(t *testing.T) {
		el := CreateElement("div", nil)
		if el.Children() == nil {
			t.Error("Children should be an empty slice, not nil")
		}
		if len(el.Props) != 1 {
			t.Errorf("Props = %v", el.Props)
		}
	})

	t.Run("children attr is replaced", func(t *testing.T) {
		el := CreateElement("p", []Attr{{Key: ChildrenKey, Value: []any{"old"}}}, "new")
		if got := el.Children(); len(got) != 1 || got[0] != "new" {
			t.Errorf("Children = %v", got)
		}
	})

	t.Run("key attr sets Key", func(t *testing.T) {
		el := CreateElement("li", []Attr{Key(42)})
		if el.Key != "42" {
			t.Errorf("Key = %q, want 42", el.Key)
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		el := CreateElement("a", []Attr{Href("/x"), Class("c"), ID("i")})
		var keys []string
		el.Props.Each(func(k string, _ any) { keys = append(keys, k) })
		want := []string{"href", "class", "id"}
		for i := range want {
			if keys[i] != want[i] {
				t.Fatalf("keys = %v, want %v", keys, want)
			}
		}
	})

	t.Run("does not alias caller attrs", func(t *testing.T) {
		attrs := []Attr{Class("a")}
		el := CreateElement("div", attrs)
		attrs[0].Value = "mutated"
		if el.Props.GetString("class") != "a" {
			t.Error("element shares storage with caller attrs")
		}
	})

	t.Run("does not alias caller children", func(t *testing.T) {
		items := []any{"a", "b"}
		el := CreateElement("ul", nil, items...)
		items[0] = "mutated"
		if got := el.Children(); got[0] != "a" {
			t.Errorf("Children = %v, element shares storage with caller slice", got)
		}
	})

	t.Run("fresh object each call", func(t *testing.T) {
		a := CreateElement("div", nil)
		b := CreateElement("div", nil)
		if a == b {
			t.Error("CreateElement must return a new element")
		}
	})
}

func TestTagHelpers(t *testing.T) {
	handler := func() {}
	el := Ul(Class("list"), nil, OnClick(handler),
		Li(Key("a"), "first"),
		[]any{Li("x"), Li("y")},
		[]Attr{ID("u")},
	)

	if el.Tag() != "ul" {
		t.Errorf("Tag = %q", el.Tag())
	}
	if !el.Props.Has("onclick") {
		t.Error("event handler prop missing")
	}
	if el.Props.GetString("id") != "u" {
		t.Error("[]Attr not merged")
	}
	children := el.Children()
	if len(children) != 2 {
		t.Fatalf("Children len = %d, want 2", len(children))
	}
	if li, ok := children[0].(*Element); !ok || li.Key != "a" {
		t.Errorf("first child = %#v", children[0])
	}
	if list, ok := children[1].([]any); !ok || len(list) != 2 {
		t.Errorf("second child should be a list, got %#v", children[1])
	}
}

func TestPropsHelpers(t *testing.T) {
	p := Props{{Key: "a", Value: 1}, {Key: ChildrenKey, Value: []any{"c"}}}

	q := p.With("b", 2).With("a", 3)
	if v, _ := q.Get("a"); v != 3 {
		t.Errorf("a = %v", v)
	}
	if v, _ := p.Get("a"); v != 1 {
		t.Error("With mutated the receiver")
	}
	if q.Without("a").Has("a") {
		t.Error("Without did not remove a")
	}

	count := 0
	q.Each(func(string, any) { count++ })
	if count != 2 {
		t.Errorf("Each visited %d props, want 2", count)
	}

	if got := (Props{{Key: ChildrenKey, Value: "solo"}}).Children(); len(got) != 1 || got[0] != "solo" {
		t.Errorf("scalar children = %v", got)
	}
	if (Props{}).Children() != nil {
		t.Error("missing children should be nil")
	}
}

func TestElementString(t *testing.T) {
	if got := Li(Key("k")).String(); got != `<li key="k">` {
		t.Errorf("String = %s", got)
	}
	var nilEl *Element
	if nilEl.String() != "<nil>" || nilEl.Children() != nil || nilEl.Tag() != "" {
		t.Error("nil element helpers should be safe")
	}
}

func TestHelpers(t *testing.T) {
	if If(false, "x") != nil || If(true, "x") != "x" {
		t.Error("If")
	}
	if IfElse(false, "a", "b") != "b" {
		t.Error("IfElse")
	}
	if When(false, func() any { t.Error("evaluated"); return nil }) != nil {
		t.Error("When")
	}
	got := Range([]string{"a", "b"}, func(s string, i int) any {
		if i == 0 {
			return nil
		}
		return Li(s)
	})
	if len(got) != 2 || got[0] != nil {
		t.Errorf("Range should keep nil slots, got %v", got)
	}
	if len(Repeat(0, func(int) any { return nil })) != 0 || len(Repeat(3, func(i int) any { return i })) != 3 {
		t.Error("Repeat")
	}
	if Textf("%d items", 3) != "3 items" || Text("x") != "x" {
		t.Error("Text helpers")
	}
}

func TestEventHelpers(t *testing.T) {
	handler := func() {}
	tests := []struct {
		h    EventHandler
		want string
	}{
		{OnClick(handler), "onclick"},
		{OnInput(handler), "oninput"},
		{OnKeyDown(handler), "onkeydown"},
		{OnSubmit(handler), "onsubmit"},
		{On("custom", handler), "oncustom"},
	}
	for _, tt := range tests {
		if tt.h.Event != tt.want {
			t.Errorf("Event = %q, want %q", tt.h.Event, tt.want)
		}
		if tt.h.Handler == nil {
			t.Errorf("%s handler is nil", tt.want)
		}
	}
}
