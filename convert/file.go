// Package convert turns MSA disk images on disk into ST images.
//
// ConvertFile handles a single job; Discover builds jobs from a source
// tree and Run fans them out over a bounded worker pool.  Nothing here
// logs or keeps shared counters: every outcome is returned as a Result.
package convert

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"msa2st/config"
	"msa2st/internal/errors"
	"msa2st/msa"
	"msa2st/util"
)

// Job is one source image and the path its ST image is written to.
type Job struct {
	Source string
	Dest   string
	Rel    string // destination path relative to the destination root
}

// Options controls how each job is converted.
type Options struct {
	Strict       bool
	DryRun       bool
	Digest       bool
	MaxImageSize int
}

// ConvertFile reads, decodes and writes a single image.
func ConvertFile(job Job, opts Options) Result {
	res := Result{Job: job}

	buf := util.GetBuf()
	defer util.PutBuf(buf)

	if err := util.ReadFileInto(job.Source, buf); err != nil {
		res.Status = Failed
		res.Err = errors.WrapFS("read", job.Source, err)
		return res
	}
	res.BytesIn = int64(buf.Len())

	dec := msa.Decoder{Strict: opts.Strict, MaxImageSize: opts.MaxImageSize}
	img, err := dec.Decode(buf.Bytes())
	if err != nil {
		res.Status = Skipped
		res.Err = err
		return res
	}
	res.Geometry = img.Geometry
	res.Anomalies = img.Anomalies
	res.BytesOut = int64(len(img.Data))

	if !opts.DryRun {
		if err := util.WriteFileAtomic(job.Dest, img.Data, config.DefaultDirPerm, config.DefaultFilePerm); err != nil {
			res.Status = Failed
			res.Err = errors.WrapFS("write", job.Dest, err)
			return res
		}
	}

	if opts.Digest {
		sum := blake2b.Sum256(img.Data)
		res.Digest = hex.EncodeToString(sum[:])
	}

	res.Status = Converted
	return res
}
