package palette

import "github.com/opencode-ai/ansitheme/internal/colorspace"

func animationRules() []rule {
	onBg := func(source string, ratio float64) deriveFunc {
		return func(e *env) colorspace.Color {
			return e.contrast(e.c(source), e.c("ui_bg"), ratio)
		}
	}
	cardMix := func(source string, t float64) deriveFunc {
		return func(e *env) colorspace.Color {
			return colorspace.Mix(e.c(source), e.c("ui_card"), t)
		}
	}
	bgMix := func(source string, t float64) deriveFunc {
		return func(e *env) colorspace.Color {
			return colorspace.Mix(e.c(source), e.c("ui_bg"), t)
		}
	}

	return []rule{
		color("frame_current", onBg("warning", indicatorContrast), "warning", "ui_bg"),
		color("time_marker", onBg("bright_yellow", indicatorContrast), "bright_yellow", "ui_bg"),
		same("time_scrub_bg", "header_bg"),
		colorAlpha("preview_range", 0.1, func(e *env) colorspace.Color {
			return e.c("danger")
		}, "danger"),

		color("keyframe", func(e *env) colorspace.Color {
			return e.contrast(e.c("bone_solid"), e.c("ui_bg"), indicatorContrast)
		}, "bone_solid", "ui_bg"),
		color("keyframe_selected", onBg("warning", indicatorContrast), "warning", "ui_bg"),
		color("keyframe_extreme", onBg("danger_bright", indicatorContrast), "danger_bright", "ui_bg"),
		color("keyframe_breakdown", onBg("bright_cyan", indicatorContrast), "bright_cyan", "ui_bg"),
		color("keyframe_jitter", onBg("success_bright", indicatorContrast), "success_bright", "ui_bg"),

		color("handle_free", onBg("bright_black", indicatorContrast), "bright_black", "ui_bg"),
		color("handle_auto", onBg("bright_yellow", indicatorContrast), "bright_yellow", "ui_bg"),
		color("handle_vector", onBg("success", indicatorContrast), "success", "ui_bg"),
		color("handle_align", onBg("bright_magenta", indicatorContrast), "bright_magenta", "ui_bg"),
		color("handle_selected", func(e *env) colorspace.Color {
			return e.contrast(e.raise(e.c("warning"), 0.1), e.c("ui_bg"), panelTextContrast)
		}, "warning", "ui_bg"),

		color("channel_group", cardMix("success", 0.6), "success", "ui_card"),
		color("channel_group_active", cardMix("success_bright", 0.4), "success_bright", "ui_card"),
		color("dopesheet_channel", cardMix("accent_primary", 0.7), "accent_primary", "ui_card"),
		color("dopesheet_subchannel", cardMix("accent_primary", 0.82), "accent_primary", "ui_card"),

		color("nla_strip", cardMix("accent_primary", 0.4), "accent_primary", "ui_card"),
		color("nla_strip_selected", cardMix("accent_bright", 0.3), "accent_bright", "ui_card"),
		color("nla_transition", cardMix("accent_secondary", 0.4), "accent_secondary", "ui_card"),
		color("nla_meta", cardMix("magenta", 0.4), "magenta", "ui_card"),
		color("nla_sound", cardMix("success", 0.4), "success", "ui_card"),
		color("nla_tweak", bgMix("danger", 0.5), "danger", "ui_bg"),
		color("nla_tweak_dup", bgMix("danger_bright", 0.4), "danger_bright", "ui_bg"),
	}
}
