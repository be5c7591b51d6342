package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func viewportRules() []rule {
	return []rule{
		colorAlpha("grid_line", 0.5, func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_border"), e.c("ui_bg"), 0.55)
		}, "ui_border", "ui_bg"),
		color("grid_axis_x", func(e *env) colorspace.Color {
			return colorspace.Desaturate(e.c("danger"), 0.02)
		}, "danger"),
		color("grid_axis_y", func(e *env) colorspace.Color {
			return colorspace.Desaturate(e.c("success"), 0.02)
		}, "success"),
		color("grid_axis_z", func(e *env) colorspace.Color {
			return colorspace.Desaturate(e.c("accent_primary"), 0.02)
		}, "accent_primary"),

		same("obj_selected", "accent_bright"),
		color("obj_active", func(e *env) colorspace.Color {
			return e.contrast(colorspace.Lighten(e.c("accent_bright"), e.mode(0.08, -0.06)), e.c("ui_bg"), indicatorContrast)
		}, "accent_bright", "ui_bg"),
		color("outline_selected", func(e *env) colorspace.Color {
			return e.contrast(e.c("warning"), e.c("ui_bg"), indicatorContrast)
		}, "warning", "ui_bg"),
		color("wire_color", func(e *env) colorspace.Color {
			return colorspace.Mix(e.src.Foreground, e.c("ui_bg"), 0.35)
		}, "ui_bg"),
		color("wire_edit", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("accent_primary"), e.src.Foreground, 0.25)
		}, "accent_primary"),
		color("vertex_color", func(e *env) colorspace.Color {
			return e.contrast(e.c("wire_color"), e.c("ui_bg"), indicatorContrast)
		}, "wire_color", "ui_bg"),
		color("vertex_select", func(e *env) colorspace.Color {
			return e.contrast(e.raise(e.c("accent_bright"), 0.08), e.c("ui_bg"), indicatorContrast)
		}, "accent_bright", "ui_bg"),
		color("edge_select", func(e *env) colorspace.Color {
			return e.contrast(e.c("accent_primary"), e.c("ui_bg"), indicatorContrast)
		}, "accent_primary", "ui_bg"),
		colorAlpha("face_select", 0.35, func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("ui_accent"), e.c("ui_bg"), 0.45)
		}, "ui_accent", "ui_bg"),
		same("face_dot", "vertex_select"),
		same("normal_color", "accent_secondary"),
		same("transform_color", "ui_text_highlight"),

		color("before_frame", func(e *env) colorspace.Color {
			return colorspace.Desaturate(e.c("danger"), 0.02)
		}, "danger"),
		color("after_frame", func(e *env) colorspace.Color {
			return colorspace.Desaturate(e.c("accent_secondary"), 0.02)
		}, "accent_secondary"),

		same("gizmo_x", "danger"),
		same("gizmo_y", "success"),
		same("gizmo_z", "accent_primary"),
		same("gizmo_primary", "accent_bright"),
		same("gizmo_secondary", "accent_secondary"),
		color("gizmo_hi", func(e *env) colorspace.Color {
			return e.contrast(e.c("white"), e.c("ui_bg"), panelTextContrast)
		}, "white", "ui_bg"),

		colorAlpha("light_color", 0.2, func(e *env) colorspace.Color {
			return e.c("bright_yellow")
		}, "bright_yellow"),
		same("camera_color", "wire_color"),
		same("empty_color", "wire_color"),
		color("bone_solid", func(e *env) colorspace.Color {
			return colorspace.Mix(e.c("white"), e.c("ui_bg"), 0.3)
		}, "white", "ui_bg"),
		same("bone_pose", "accent_secondary"),
		color("bone_pose_active", func(e *env) colorspace.Color {
			return e.raise(e.c("accent_secondary"), 0.1)
		}, "accent_secondary"),
	}
}
