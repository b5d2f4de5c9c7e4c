package registry

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"croprecd/internal/common/fsutil"
	"croprecd/internal/model"
)

// Fixed artifact file names inside the artifact directory.
const (
	ModelFile       = "crop_recommender.json"
	CropEncoderFile = "label_encoder.json"
	SoilEncoderFile = "soil_encoder.json"
)

// DefaultDir is the artifact directory used when none is configured.
const DefaultDir = "dist"

// Options controls Load.
type Options struct {
	Dir      string
	Revision Revision
}

// Load deserializes every artifact the revision needs. It does not return an
// error: a missing or corrupt artifact is logged and yields an unloaded
// registry so the service can still start and report itself unhealthy.
func Load(opts Options) *Registry {
	rev := opts.Revision
	if rev == 0 {
		rev = RevisionBasic
	}
	dirIn := opts.Dir
	if dirIn == "" {
		dirIn = DefaultDir
	}
	dir, err := fsutil.ResolveDir(dirIn)
	if err != nil {
		return fail(rev, dirIn, err)
	}
	reg, err := load(dir, rev)
	if err != nil {
		return fail(rev, dir, err)
	}
	reg.dir = dir
	log.Info().
		Str("dir", dir).
		Int("revision", int(rev)).
		Str("model_type", reg.classifier.TypeName()).
		Int("classes", reg.crops.Len()).
		Msg("models loaded successfully")
	return reg
}

func load(dir string, rev Revision) (*Registry, error) {
	if !rev.Valid() {
		return nil, fmt.Errorf("unknown api revision %d", rev)
	}
	files := []string{ModelFile, CropEncoderFile}
	if rev == RevisionSoil {
		files = append(files, SoilEncoderFile)
	}
	for _, f := range files {
		if p := filepath.Join(dir, f); !fsutil.PathExists(p) {
			return nil, fmt.Errorf("artifact not found at %s", p)
		}
	}

	clf, err := model.LoadFile(filepath.Join(dir, ModelFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ModelFile, err)
	}
	crops, err := LoadLabelEncoder(filepath.Join(dir, CropEncoderFile))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", CropEncoderFile, err)
	}
	var soils *LabelEncoder
	if rev == RevisionSoil {
		if soils, err = LoadLabelEncoder(filepath.Join(dir, SoilEncoderFile)); err != nil {
			return nil, fmt.Errorf("%s: %w", SoilEncoderFile, err)
		}
	}
	return Assemble(rev, clf, crops, soils)
}

func fail(rev Revision, dir string, err error) *Registry {
	log.Error().Err(err).Str("dir", dir).Msg("error loading models")
	return Unloaded(rev, dir, err.Error())
}
