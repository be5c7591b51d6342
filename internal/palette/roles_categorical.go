package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

// Categorical set sizes.
const (
	CollectionColorCount = 8
	NodeTypeColorCount   = 15
	BoneColorSetCount    = 20
	StripColorCount      = 9
)

// nodeTypes names the node header roles in node_type_colors order.
var nodeTypes = [NodeTypeColorCount]string{
	"node_input",
	"node_output",
	"node_shader",
	"node_texture",
	"node_color",
	"node_vector",
	"node_converter",
	"node_filter",
	"node_matte",
	"node_distort",
	"node_pattern",
	"node_group",
	"node_interface",
	"node_script",
	"node_layout",
}

// categoricalRules generate evenly hue-spaced sets at a matched lightness
// and chroma so every member is equally prominent for any input palette.
func categoricalRules() []rule {
	rules := []rule{
		colorSet("collection_colors", func(e *env) []colorspace.Color {
			return e.categorical(CollectionColorCount, 0.72, 0.55, 0.13)
		}, "accent_primary"),
		colorSet("node_type_colors", func(e *env) []colorspace.Color {
			return e.categorical(NodeTypeColorCount, 0.48, 0.8, 0.09)
		}, "accent_primary"),
		colorSet("bone_color_normal", func(e *env) []colorspace.Color {
			return e.categorical(BoneColorSetCount, 0.58, 0.5, 0.15)
		}, "accent_primary"),
		colorSet("bone_color_select", func(e *env) []colorspace.Color {
			return e.categorical(BoneColorSetCount, 0.7, 0.62, 0.15)
		}, "accent_primary"),
		colorSet("bone_color_active", func(e *env) []colorspace.Color {
			return e.categorical(BoneColorSetCount, 0.82, 0.72, 0.13)
		}, "accent_primary"),
		colorSet("strip_colors", func(e *env) []colorspace.Color {
			return e.categorical(StripColorCount, 0.66, 0.58, 0.12)
		}, "accent_primary"),
	}

	for i, name := range nodeTypes {
		i := i
		rules = append(rules, color(name, func(e *env) colorspace.Color {
			return e.list("node_type_colors")[i]
		}, "node_type_colors"))
	}

	rules = append(rules, color("node_header_text", func(e *env) colorspace.Color {
		text := e.c("ui_text")
		worst := e.list("node_type_colors")[0]
		for _, c := range e.list("node_type_colors")[1:] {
			if colorspace.ContrastRatio(text, c) < colorspace.ContrastRatio(text, worst) {
				worst = c
			}
		}
		return e.readable(worst, text, panelTextContrast)
	}, "ui_text", "node_type_colors"))

	return rules
}
