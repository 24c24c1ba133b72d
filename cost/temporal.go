package cost

import (
	"math"
	"time"
)

// ticksToSeconds converts raw engine ticks to fractional wall-clock seconds.
func ticksToSeconds(ticks int64, unit TimeUnit) float64 {
	if unit == Milliseconds {
		return float64(ticks) / 1000.0
	}

	return float64(ticks)
}

// temporalSample is the derived (day_of_week, bucket_index,
// fractional_bucket, day_active) tuple consumed by resolveMultiplier.
type temporalSample struct {
	dayOfWeek  int // Monday=0 .. Sunday=6
	bucket     int
	fractional float64
	dayActive  bool
}

// deriveTemporalSample implements spec §4.2 step 2: mapping entry ticks
// through the resolved temporal context into a bucket position.
// dayMaskActive reports whether the profile's day-mask has the derived
// weekday active; for Linear mode the day-mask is ignored outright and
// dayActive is always true.
func deriveTemporalSample(entryTicks int64, cfg Config, tctx TemporalContext, dayActive func(dayOfWeek int) bool, bucketCount int) temporalSample {
	seconds := ticksToSeconds(entryTicks, cfg.TimeUnit)

	switch tctx.Kind {
	case Linear:
		cycle := float64(bucketCount) * float64(cfg.BucketSizeSeconds)
		pos := math.Mod(seconds, cycle)
		if pos < 0 {
			pos += cycle
		}
		idx, frac := bucketFromPosition(pos, float64(cfg.BucketSizeSeconds), bucketCount)

		return temporalSample{dayOfWeek: 0, bucket: idx, fractional: frac, dayActive: true}

	default: // CalendarUTC, CalendarWithZone
		// CalendarWithZone with a nil Zone cannot reach here: callers must
		// run TemporalContext through ValidateTemporalContext first. The
		// time.UTC fallback only guards CalendarUTC (Zone is always nil
		// there by construction).
		loc := time.UTC
		if tctx.Kind == CalendarWithZone && tctx.Zone != nil {
			loc = tctx.Zone
		}
		whole := math.Floor(seconds)
		frac := seconds - whole
		nsec := int64(frac * 1e9)
		t := time.Unix(int64(whole), nsec).In(loc)

		mondayIndexed := (int(t.Weekday()) + 6) % 7
		secOfDay := float64(t.Hour()*3600+t.Minute()*60+t.Second()) + float64(t.Nanosecond())/1e9
		idx, bfrac := bucketFromPosition(secOfDay, float64(cfg.BucketSizeSeconds), bucketCount)

		return temporalSample{
			dayOfWeek:  mondayIndexed,
			bucket:     idx,
			fractional: bfrac,
			dayActive:  dayActive(mondayIndexed),
		}
	}
}

// bucketFromPosition converts a position in seconds (within a bucketized
// cycle) into (bucket_index, fractional_bucket), clamping the index into
// [0, bucketCount) to absorb rounding at the cycle boundary.
func bucketFromPosition(posSeconds, bucketSizeSeconds float64, bucketCount int) (int, float64) {
	raw := posSeconds / bucketSizeSeconds
	idx := int(math.Floor(raw))
	frac := raw - math.Floor(raw)
	if idx >= bucketCount {
		idx = bucketCount - 1
		frac = 0
	}
	if idx < 0 {
		idx = 0
		frac = 0
	}

	return idx, frac
}

// resolveMultiplier implements spec §4.2 step 3.
func resolveMultiplier(buckets []float32, scalar float32, sample temporalSample, policy SamplingPolicy) float32 {
	if !sample.dayActive {
		return DefaultMultiplier
	}

	n := len(buckets)
	switch policy {
	case Discrete:
		return buckets[sample.bucket] * scalar
	default: // Interpolated
		next := (sample.bucket + 1) % n
		blended := buckets[sample.bucket]*float32(1-sample.fractional) + buckets[next]*float32(sample.fractional)

		return blended * scalar
	}
}

// DefaultMultiplier is applied when the profile's day-mask bit for the
// derived weekday is inactive (spec §4.2 step 2-3), mirroring
// graphmodel.DefaultMultiplier.
const DefaultMultiplier float32 = 1.0
