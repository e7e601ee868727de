package shaders

import (
	"regexp"
	"strings"
	"testing"
)

var uniformDecl = regexp.MustCompile(`(?m)^uniform\s+\w+\s+(\w+)\s*;`)

func declared(src string) map[string]bool {
	names := make(map[string]bool)
	for _, m := range uniformDecl.FindAllStringSubmatch(src, -1) {
		names[m[1]] = true
	}
	return names
}

func TestWaterUniformsDeclared(t *testing.T) {
	vert := declared(WaterVertexShader)
	frag := declared(WaterFragmentShader)
	seen := make(map[string]bool)
	for _, name := range WaterUniforms {
		if seen[name] {
			t.Errorf("uniform %s listed twice", name)
		}
		seen[name] = true
		if !vert[name] && !frag[name] {
			t.Errorf("uniform %s not declared in either stage", name)
		}
	}
	for name := range vert {
		if !seen[name] {
			t.Errorf("vertex uniform %s missing from WaterUniforms", name)
		}
	}
	for name := range frag {
		if !seen[name] {
			t.Errorf("fragment uniform %s missing from WaterUniforms", name)
		}
	}
}

func TestWaterShaderVersion(t *testing.T) {
	for name, src := range map[string]string{"vertex": WaterVertexShader, "fragment": WaterFragmentShader} {
		if !strings.HasPrefix(src, "#version 410 core") {
			t.Errorf("%s shader does not target GLSL 4.10 core", name)
		}
	}
}

func TestWaterStagesLink(t *testing.T) {
	for _, v := range []string{"vNormal", "vWorldPosition", "vElevation"} {
		if !regexp.MustCompile(`out\s+\w+\s+`+v+`;`).MatchString(WaterVertexShader) {
			t.Errorf("vertex shader does not output %s", v)
		}
		if !regexp.MustCompile(`in\s+\w+\s+` + v + `;`).MatchString(WaterFragmentShader) {
			t.Errorf("fragment shader does not input %s", v)
		}
	}
}

func TestWaterFresnelHeadOnGuard(t *testing.T) {
	// pow(0, 0) is undefined in GLSL; a head-on view must short-circuit to 0.
	guard := regexp.MustCompile(`fresnel\s*=\s*ndv\s*>=\s*1\.0\s*\?\s*0\.0\s*:`)
	if !guard.MatchString(WaterFragmentShader) {
		t.Error("fragment shader fresnel has no head-on zero guard")
	}
}
