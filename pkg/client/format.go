package client

import (
	"mime"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ExtMP3  = "mp3"
	ExtWAV  = "wav"
	ExtULaw = "ulaw"
	ExtOpus = "opus"
	ExtZip  = "zip"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ext returns the file extension for an output format such as mp3_44100_128,
// and the sample rate for raw PCM formats which are wrapped in a WAV container.
// The sample rate is zero for all other formats
func Ext(format string) (string, int) {
	codec, params, _ := strings.Cut(format, "_")
	switch codec {
	case "pcm":
		rate, err := strconv.Atoi(params)
		if err != nil || rate <= 0 {
			return "", 0
		}
		return ExtWAV, rate
	case "mp3":
		return ExtMP3, 0
	case "ulaw":
		return ExtULaw, 0
	case "opus":
		return ExtOpus, 0
	default:
		return "", 0
	}
}

// ContentExt returns the file extension for a response content type, or an
// empty string if the content type is not recognised
func ContentExt(contentType string) string {
	mimetype, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch mimetype {
	case "audio/mpeg", "audio/mp3":
		return ExtMP3
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ExtWAV
	case "audio/basic":
		return ExtULaw
	case "audio/ogg", "audio/opus":
		return ExtOpus
	case "application/zip", "application/x-zip-compressed":
		return ExtZip
	default:
		return ""
	}
}
