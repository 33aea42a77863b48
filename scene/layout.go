package scene

import (
	"errors"
	"fmt"
	"log"
	"sort"

	"go.starlark.net/starlark"

	"pan-zoom/assets"
)

// RunLayout executes a Starlark layout script. The script sees screen_width,
// screen_height and textures (name -> {"width", "height", "channels"}) and
// must bind sprites to a list of dicts with texture, x, y, w, h and an
// optional name. src follows starlark.ExecFile: nil reads filename.
func RunLayout(filename string, src interface{}, screenW, screenH int, textures map[string]*assets.Texture) ([]SpriteConfig, error) {
	thread := &starlark.Thread{
		Name:  "layout",
		Print: func(_ *starlark.Thread, msg string) { log.Println("layout:", msg) },
	}

	predeclared := starlark.StringDict{
		"screen_width":  starlark.MakeInt(screenW),
		"screen_height": starlark.MakeInt(screenH),
		"textures":      textureDict(textures),
	}

	globals, err := starlark.ExecFile(thread, filename, src, predeclared)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			return nil, fmt.Errorf("layout %s: %s", filename, evalErr.Backtrace())
		}
		return nil, fmt.Errorf("layout %s: %w", filename, err)
	}

	v, ok := globals["sprites"]
	if !ok {
		return nil, fmt.Errorf("layout %s: sprites is not defined", filename)
	}
	seq, ok := v.(starlark.Indexable)
	if !ok {
		return nil, fmt.Errorf("layout %s: sprites is a %s, want list", filename, v.Type())
	}

	out := make([]SpriteConfig, 0, seq.Len())
	for i := 0; i < seq.Len(); i++ {
		d, ok := seq.Index(i).(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("layout %s: sprites[%d] is a %s, want dict", filename, i, seq.Index(i).Type())
		}
		s, err := spriteFromDict(d)
		if err != nil {
			return nil, fmt.Errorf("layout %s: sprites[%d]: %w", filename, i, err)
		}
		if _, ok := textures[s.Texture]; !ok {
			return nil, fmt.Errorf("layout %s: sprites[%d]: unknown texture %q", filename, i, s.Texture)
		}
		out = append(out, s)
	}
	return out, nil
}

func textureDict(textures map[string]*assets.Texture) *starlark.Dict {
	names := make([]string, 0, len(textures))
	for name := range textures {
		names = append(names, name)
	}
	sort.Strings(names)

	d := starlark.NewDict(len(textures))
	for _, name := range names {
		tex := textures[name]
		info := starlark.NewDict(3)
		_ = info.SetKey(starlark.String("width"), starlark.MakeInt(tex.Width))
		_ = info.SetKey(starlark.String("height"), starlark.MakeInt(tex.Height))
		_ = info.SetKey(starlark.String("channels"), starlark.MakeInt(tex.Channels))
		info.Freeze()
		_ = d.SetKey(starlark.String(name), info)
	}
	d.Freeze()
	return d
}

func spriteFromDict(d *starlark.Dict) (SpriteConfig, error) {
	var s SpriteConfig
	var err error
	if s.Texture, err = stringField(d, "texture", true); err != nil {
		return s, err
	}
	if s.Name, err = stringField(d, "name", false); err != nil {
		return s, err
	}
	if s.Name == "" {
		s.Name = s.Texture
	}
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"x", &s.X}, {"y", &s.Y}, {"w", &s.W}, {"h", &s.H},
	} {
		if *f.dst, err = floatField(d, f.key); err != nil {
			return s, err
		}
	}
	return s, nil
}

func stringField(d *starlark.Dict, key string, required bool) (string, error) {
	v, found, err := d.Get(starlark.String(key))
	if err != nil {
		return "", err
	}
	if !found {
		if required {
			return "", fmt.Errorf("missing %q", key)
		}
		return "", nil
	}
	s, ok := starlark.AsString(v)
	if !ok {
		return "", fmt.Errorf("%q is a %s, want string", key, v.Type())
	}
	return s, nil
}

func floatField(d *starlark.Dict, key string) (float64, error) {
	v, found, err := d.Get(starlark.String(key))
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("missing %q", key)
	}
	f, ok := starlark.AsFloat(v)
	if !ok {
		return 0, fmt.Errorf("%q is a %s, want number", key, v.Type())
	}
	return f, nil
}
