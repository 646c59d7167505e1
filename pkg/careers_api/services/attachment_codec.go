package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/agricom-careers/careers-api/pkg/careers_api/helpers/problem"
	"github.com/agricom-careers/careers-api/pkg/careers_api/models"
	"golang.org/x/sync/errgroup"
)

// MaxUploadBytes caps each attachment at 5 MiB. The bytes are buffered in
// memory per in-flight request, so the cap also bounds memory.
const MaxUploadBytes = 5 << 20

// EncodeUploads buffers the optional cv and cover-letter files into storable
// records. Both files are read concurrently; either being absent yields nil,
// never an empty record.
func EncodeUploads(cv, coverLetter *multipart.FileHeader) (*models.Upload, *models.Upload, error) {
	var cvUp, clUp *models.Upload

	var g errgroup.Group
	g.Go(func() error {
		up, err := encodeUpload(cv)
		cvUp = up
		return err
	})
	g.Go(func() error {
		up, err := encodeUpload(coverLetter)
		clUp = up
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return cvUp, clUp, nil
}

func encodeUpload(fh *multipart.FileHeader) (*models.Upload, error) {
	if fh == nil {
		return nil, nil
	}
	if fh.Size > MaxUploadBytes {
		return nil, problem.NewPayloadTooLarge(
			fmt.Sprintf("file %q exceeds the %d MiB upload limit", fh.Filename, MaxUploadBytes>>20))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxUploadBytes {
		return nil, problem.NewPayloadTooLarge(
			fmt.Sprintf("file %q exceeds the %d MiB upload limit", fh.Filename, MaxUploadBytes>>20))
	}

	mimetype := fh.Header.Get("Content-Type")
	if mimetype == "" {
		mimetype = http.DetectContentType(data)
	}

	return &models.Upload{Data: data, Filename: fh.Filename, Mimetype: mimetype}, nil
}
