package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"croprecd/internal/registry"
	"croprecd/pkg/types"
)

// inspectReport is printed by the inspect command.
type inspectReport struct {
	Dir         string                   `json:"artifacts_dir"`
	APIRevision int                      `json:"api_revision"`
	Loaded      bool                     `json:"loaded"`
	Error       string                   `json:"error,omitempty"`
	Model       *types.ModelInfo         `json:"model,omitempty"`
	Crops       *types.CropsResponse     `json:"crops,omitempty"`
	SoilTypes   *types.SoilTypesResponse `json:"soil_types,omitempty"`
}

func (c *cli) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect",
		Short:   "Load the artifacts and print model metadata without serving",
		Example: "  croprecd inspect --artifacts-dir dist --api-revision 2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := newService(c.cfg)
			rep := inspectReport{APIRevision: int(svc.Revision()), Loaded: svc.Ready()}
			if info, err := svc.ModelInfo(); err == nil {
				rep.Model = &info
			}
			if crops, err := svc.Crops(); err == nil {
				rep.Crops = &crops
			}
			if svc.Revision() == registry.RevisionSoil {
				if soils, err := svc.SoilTypes(); err == nil {
					rep.SoilTypes = &soils
				}
			}
			rep.Dir, rep.Error = svc.Source()
			enc := json.NewEncoder(c.stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
			if !rep.Loaded {
				return fmt.Errorf("models not loaded: %s", rep.Error)
			}
			return nil
		},
	}
}
