package metrics

import "expvar"

var (
	FramesRendered  = expvar.NewInt("frames_rendered")
	FramesSkipped   = expvar.NewInt("frames_skipped_too_small")
	RenderLastUs    = expvar.NewInt("render_last_us")
	RenderTotalUs   = expvar.NewInt("render_total_us")
	Ticks           = expvar.NewInt("ticks")
	ManualRefreshes = expvar.NewInt("manual_refreshes")
	Resizes         = expvar.NewInt("resizes")
)

// Summary 退出时写日志用的计数快照
func Summary() map[string]int64 {
	return map[string]int64{
		"frames_rendered": FramesRendered.Value(),
		"frames_skipped":  FramesSkipped.Value(),
		"render_total_us": RenderTotalUs.Value(),
		"ticks":           Ticks.Value(),
		"manual_refresh":  ManualRefreshes.Value(),
		"resizes":         Resizes.Value(),
	}
}
