package main

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
)

type customParams struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func decodeCustomParams(raw string) (customParams, error) {
	var params customParams
	src, err := url.ParseQuery(raw)
	if err != nil {
		return params, fmt.Errorf("invalid custom params: %w", err)
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&params, src); err != nil {
		return params, fmt.Errorf("invalid custom params: %w", err)
	}
	return params, params.validate()
}

func (p customParams) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("board dimensions must be positive")
	}
	// 9 squares around the first click always stay clear
	if limit := p.Width*p.Height - 9; p.MineCount < 0 || p.MineCount > limit {
		return fmt.Errorf("mine count must be between 0 and %d for a %dx%d board",
			limit, p.Width, p.Height)
	}
	return nil
}
