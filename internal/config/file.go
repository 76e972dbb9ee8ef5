package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is looked up in the working directory at startup.
const DefaultFile = "spotlit.toml"

// fileSettings mirrors the optional settings file. Pointer fields distinguish
// "absent" from a zero value.
type fileSettings struct {
	Camera struct {
		Speed       *float32 `toml:"speed"`
		Sensitivity *float32 `toml:"sensitivity"`
		ZoomMin     *float32 `toml:"zoom_min"`
		ZoomMax     *float32 `toml:"zoom_max"`
		Yaw         *float32 `toml:"yaw"`
		Pitch       *float32 `toml:"pitch"`
	} `toml:"camera"`
	Display struct {
		VSync       *bool `toml:"vsync"`
		FPSLimit    *int  `toml:"fps_limit"`
		DebugOutput *bool `toml:"debug_output"`
		Wireframe   *bool `toml:"wireframe"`
	} `toml:"display"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
	Assets struct {
		FloorDiffuse  string `toml:"floor_diffuse"`
		FloorSpecular string `toml:"floor_specular"`
		Font          string `toml:"font"`
	} `toml:"assets"`
}

// Load applies the settings file at path. A missing file leaves the defaults
// in place and is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	return Apply(data)
}

// Apply parses TOML settings and applies every key present.
func Apply(data []byte) error {
	var fsx fileSettings
	if err := toml.Unmarshal(data, &fsx); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	if v := fsx.Camera.Speed; v != nil {
		SetMoveSpeed(*v)
	}
	if v := fsx.Camera.Sensitivity; v != nil {
		SetMouseSensitivity(*v)
	}
	if fsx.Camera.ZoomMin != nil || fsx.Camera.ZoomMax != nil {
		lo, hi := GetZoomRange()
		if v := fsx.Camera.ZoomMin; v != nil {
			lo = *v
		}
		if v := fsx.Camera.ZoomMax; v != nil {
			hi = *v
		}
		SetZoomRange(lo, hi)
	}
	if fsx.Camera.Yaw != nil || fsx.Camera.Pitch != nil {
		yaw, pitch := GetInitialOrientation()
		if v := fsx.Camera.Yaw; v != nil {
			yaw = *v
		}
		if v := fsx.Camera.Pitch; v != nil {
			pitch = *v
		}
		SetInitialOrientation(yaw, pitch)
	}
	if v := fsx.Display.VSync; v != nil {
		SetVSync(*v)
	}
	if v := fsx.Display.FPSLimit; v != nil {
		SetFPSLimit(*v)
	}
	if v := fsx.Display.DebugOutput; v != nil {
		SetDebugOutput(*v)
	}
	if v := fsx.Display.Wireframe; v != nil {
		SetWireframeMode(*v)
	}
	if fsx.Log.Level != "" {
		SetLogLevel(fsx.Log.Level)
	}
	SetFloorTextures(fsx.Assets.FloorDiffuse, fsx.Assets.FloorSpecular)
	if fsx.Assets.Font != "" {
		SetFontPath(fsx.Assets.Font)
	}
	return nil
}
