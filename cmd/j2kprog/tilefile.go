package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	progression "github.com/ajroetker/go-jpeg2000-progression"
)

// tileFile is the YAML description of one tile accepted by --tile.
type tileFile struct {
	Order  string `yaml:"order"`
	Layers int    `yaml:"layers"`
	Tile   struct {
		X0 int `yaml:"x0"`
		Y0 int `yaml:"y0"`
		X1 int `yaml:"x1"`
		Y1 int `yaml:"y1"`
	} `yaml:"tile"`
	Components []progression.ComponentGeometry `yaml:"components"`
}

func loadTileFile(path string) (*tileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tile file: %w", err)
	}
	return parseTileFile(data)
}

func parseTileFile(data []byte) (*tileFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tf tileFile
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("parse tile file: %w", err)
	}
	return &tf, nil
}

func (tf *tileFile) geometry() *progression.TileGeometry {
	return &progression.TileGeometry{
		X0:         tf.Tile.X0,
		Y0:         tf.Tile.Y0,
		X1:         tf.Tile.X1,
		Y1:         tf.Tile.Y1,
		Components: tf.Components,
	}
}
