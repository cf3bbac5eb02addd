package metrics

import "io"
import "io/fs"
import "fmt"
import "encoding/json"

// Atlas rectangles are plain numbers on the record format. They
// shadow the int fields of the embedded metrics while decoding.
type decodedMetrics struct {
	*FontMetrics
	Width  []float64 `json:"width"`
	Height []float64 `json:"height"`
	PackX  []float64 `json:"pack_x"`
	PackY  []float64 `json:"pack_y"`
}

// Decodes font metrics from their JSON representation. Unknown
// fields are ignored, and fractional atlas rectangle values are
// truncated to whole pixels. The result is not validated, use
// [FontMetrics.Validate]() for that.
func Decode(reader io.Reader) (*FontMetrics, error) {
	decoder := json.NewDecoder(reader)
	var fontMetrics FontMetrics
	decoded := decodedMetrics{ FontMetrics: &fontMetrics }
	err := decoder.Decode(&decoded)
	if err != nil { return nil, fmt.Errorf("decode metrics: %w", err) }
	fontMetrics.Width  = truncatePixels(decoded.Width)
	fontMetrics.Height = truncatePixels(decoded.Height)
	fontMetrics.PackX  = truncatePixels(decoded.PackX)
	fontMetrics.PackY  = truncatePixels(decoded.PackY)
	return &fontMetrics, nil
}

func truncatePixels(values []float64) []int {
	if values == nil { return nil }
	pixels := make([]int, len(values))
	for i, value := range values {
		pixels[i] = int(value)
	}
	return pixels
}

// Loads font metrics from the given file system path.
func LoadFile(fsys fs.FS, path string) (*FontMetrics, error) {
	file, err := fsys.Open(path)
	if err != nil { return nil, err }
	fontMetrics, err := Decode(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fontMetrics, file.Close()
}

// Encodes the metrics as indented JSON, the same format [Decode]()
// consumes.
func Encode(writer io.Writer, fontMetrics *FontMetrics) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "\t")
	return encoder.Encode(fontMetrics)
}
