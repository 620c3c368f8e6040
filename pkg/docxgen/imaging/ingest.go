package imaging

// DefaultThreshold is the byte length above which pictures are re-encoded.
const DefaultThreshold = 500_000

// DefaultQuality is the JPEG quality used when re-encoding.
const DefaultQuality = 75

// Ingestor routes raw picture bytes through Compress when they are too large.
type Ingestor struct {
	// Threshold is the largest byte length embedded as is.
	Threshold int
	// Quality is the JPEG quality (1-100) used when re-encoding.
	Quality int
}

// NewIngestor returns an Ingestor with the default threshold and quality.
func NewIngestor() *Ingestor {
	return &Ingestor{Threshold: DefaultThreshold, Quality: DefaultQuality}
}

// Result describes what Ingest did with a buffer.
type Result struct {
	// Data is the buffer to embed: compressed output, or the original bytes.
	Data []byte
	// Attempted is true when the buffer was above the threshold.
	Attempted bool
	// Compressed is true when Data holds re-encoded output.
	Compressed bool
	// OriginalSize is the length of the input buffer.
	OriginalSize int
	// Format is the media type of Data.
	Format Format
	// Err is the compression failure that caused a fallback, if any.
	Err error
}

// Ingest returns the bytes to embed for a picture displayed at width x height.
// It never fails: a compression error is reported in Result.Err and the
// original bytes are returned in Result.Data.
func (in *Ingestor) Ingest(raw []byte, width, height uint) Result {
	res := Result{Data: raw, OriginalSize: len(raw)}
	if len(raw) <= in.threshold() {
		res.Format = DetectFormat(raw)
		return res
	}

	res.Attempted = true
	out, err := Compress(raw, width, height, in.quality())
	if err != nil {
		res.Err = err
		res.Format = DetectFormat(raw)
		return res
	}

	res.Data = out
	res.Compressed = true
	res.Format = formats["jpeg"]
	return res
}

func (in *Ingestor) threshold() int {
	if in == nil || in.Threshold <= 0 {
		return DefaultThreshold
	}
	return in.Threshold
}

func (in *Ingestor) quality() int {
	if in == nil || in.Quality <= 0 || in.Quality > 100 {
		return DefaultQuality
	}
	return in.Quality
}
