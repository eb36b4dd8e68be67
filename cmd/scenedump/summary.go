package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gym-scene/internal/engine/scene"
	"github.com/Faultbox/gym-scene/internal/engine/trace"
)

type textureRow struct {
	Tag    string `yaml:"tag"`
	Path   string `yaml:"path"`
	Slot   int    `yaml:"slot"`
	Loaded bool   `yaml:"loaded"`
}

type summary struct {
	Textures     []textureRow     `yaml:"textures"`
	Materials    []string         `yaml:"materials"`
	ActiveLights int              `yaml:"active_lights"`
	Objects      int              `yaml:"objects"`
	Frames       int              `yaml:"frames"`
	LastFrame    scene.FrameStats `yaml:"last_frame"`
	DrawsByMesh  map[string]int   `yaml:"draws_by_mesh"`
	Uniforms     int              `yaml:"uniform_writes"`
	Unresolved   []string         `yaml:"unresolved,omitempty"`
	LoadErrors   []string         `yaml:"load_errors,omitempty"`
}

func summarize(d *scene.Director, rec *trace.Recorder) summary {
	def := d.Definition()
	s := summary{
		Materials:    d.Materials().Tags(),
		ActiveLights: def.ActiveLights(),
		Objects:      len(def.Objects),
		Frames:       d.Frames(),
		LastFrame:    d.LastFrame(),
		DrawsByMesh:  make(map[string]int),
		Uniforms:     rec.Count(trace.OpUniform),
		Unresolved:   d.Unresolved(),
	}

	for _, t := range def.Textures {
		row := textureRow{Tag: t.Tag, Path: t.Path, Slot: -1}
		if slot, ok := d.Textures().FindSlot(t.Tag); ok {
			row.Slot, row.Loaded = slot, true
		}
		s.Textures = append(s.Textures, row)
	}
	for _, kind := range rec.Draws() {
		s.DrawsByMesh[kind]++
	}
	for _, err := range d.LoadErrors() {
		s.LoadErrors = append(s.LoadErrors, err.Error())
	}
	return s
}

func writeSummary(out io.Writer, format string, s summary) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(s)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEXTURE\tSLOT\tPATH")
	for _, t := range s.Textures {
		slot := "-"
		if t.Loaded {
			slot = fmt.Sprint(t.Slot)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Tag, slot, t.Path)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "materials\t%v\n", s.Materials)
	fmt.Fprintf(tw, "active lights\t%d\n", s.ActiveLights)
	fmt.Fprintf(tw, "objects\t%d\n", s.Objects)
	fmt.Fprintf(tw, "frames\t%d\n", s.Frames)
	fmt.Fprintf(tw, "last frame\t%d draws, %d textured, %d solid, %d skipped\n",
		s.LastFrame.Draws, s.LastFrame.Textured, s.LastFrame.Solid, s.LastFrame.Skipped)

	kinds := make([]string, 0, len(s.DrawsByMesh))
	for k := range s.DrawsByMesh {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(tw, "draws: %s\t%d\n", k, s.DrawsByMesh[k])
	}
	fmt.Fprintf(tw, "uniform writes\t%d\n", s.Uniforms)

	for _, u := range s.Unresolved {
		fmt.Fprintf(tw, "unresolved\t%s\n", u)
	}
	for _, e := range s.LoadErrors {
		fmt.Fprintf(tw, "load error\t%s\n", e)
	}
	return tw.Flush()
}
