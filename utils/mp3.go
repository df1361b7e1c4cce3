package utils

import (
	"io"
	"os"

	tcmp3 "github.com/tcolgate/mp3"
)

// MP3Duration walks the MP3 frames of the file and sums their durations,
// returning seconds.
func MP3Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var (
		dur     float64
		dec     = tcmp3.NewDecoder(f)
		frame   tcmp3.Frame
		skipped int
	)

	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if err == io.EOF {
				break
			}
			return 0, err
		}
		dur += frame.Duration().Seconds()
	}

	return dur, nil
}
