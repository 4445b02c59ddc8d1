package services

import (
	"strconv"
	"time"

	"media-fetcher-go/config"
)

// EngineOptions describes the desired output for one engine invocation:
// where to write, which streams to select, and how to post-process.
type EngineOptions struct {
	OutputTemplate    string
	Format            string // stream selector expression
	MergeOutputFormat string // container for merged two-stream downloads
	ExtractAudio      bool
	AudioFormat       string        // target codec for extracted audio
	AudioBitrate      string        // explicit bitrate, e.g. "320k"
	AudioQuality      string        // VBR quality when no explicit bitrate
	NoPlaylist        bool
	SleepRequests     time.Duration // delay between item fetches
	FFmpegLocation    string
}

// VideoOptions builds engine options for mp4 output. Quality caps the
// maximum resolution; unknown values fall back to the unrestricted "best"
// selector rather than failing.
func VideoOptions(outputTemplate, quality string) EngineOptions {
	format, ok := config.MP4QualityFormats[quality]
	if !ok {
		format = config.MP4QualityFormats["best"]
	}
	return EngineOptions{
		OutputTemplate:    outputTemplate,
		Format:            format,
		MergeOutputFormat: "mp4",
		FFmpegLocation:    config.FFmpegLocation(),
	}
}

// AudioOptions builds engine options for mp3 or wav output: best available
// audio, then extraction/transcoding to the target codec. A recognized
// bitrate becomes an explicit directive; anything else means max-quality
// VBR. Quality only applies to mp3.
func AudioOptions(outputTemplate, audioFormat, quality string) EngineOptions {
	opts := EngineOptions{
		OutputTemplate: outputTemplate,
		Format:         "bestaudio/best",
		ExtractAudio:   true,
		AudioFormat:    "mp3",
		FFmpegLocation: config.FFmpegLocation(),
	}
	if audioFormat == "wav" {
		opts.AudioFormat = "wav"
		return opts
	}
	if config.MP3QualityBitrates[quality] {
		opts.AudioBitrate = quality + "k"
	} else {
		opts.AudioQuality = "0"
	}
	return opts
}

// args renders the options as yt-dlp command line arguments
func (o EngineOptions) args() []string {
	args := []string{"--no-warnings", "-o", o.OutputTemplate}
	if o.Format != "" {
		args = append(args, "-f", o.Format)
	}
	if o.MergeOutputFormat != "" {
		args = append(args, "--merge-output-format", o.MergeOutputFormat)
	}
	if o.ExtractAudio {
		args = append(args, "-x", "--audio-format", o.AudioFormat)
		if o.AudioBitrate != "" {
			args = append(args, "--postprocessor-args", "ffmpeg:-b:a "+o.AudioBitrate)
		} else if o.AudioQuality != "" {
			args = append(args, "--audio-quality", o.AudioQuality)
		}
	}
	if o.NoPlaylist {
		args = append(args, "--no-playlist")
	} else {
		args = append(args, "--yes-playlist")
	}
	if o.SleepRequests > 0 {
		args = append(args, "--sleep-requests", strconv.FormatFloat(o.SleepRequests.Seconds(), 'f', -1, 64))
	}
	if o.FFmpegLocation != "" {
		args = append(args, "--ffmpeg-location", o.FFmpegLocation)
	}
	return args
}
