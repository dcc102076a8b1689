// Package citywalk answers one question for two pedestrians living on the
// same small city grid: to arrive at a destination together, who has to
// leave home first, and by how many minutes?
//
// 🚶 How a walk is priced
//
//	Every block has a tier: normal, poor sidewalk or commercial.
//	Stepping onto a block costs the walker that tier's price in minutes;
//	the block you start on is free. Each traveler has their own price table.
//
// 🧭 Packages
//
//	gridgraph/        - immutable rectangular lattice, Cell{Row, Col}, 4-adjacency
//	costmodel/        - tier rules (cells, row and column ranges) and price tables
//	dijkstra/         - label-setting search with entered-cell weights and hooks
//	router/           - City: ShortestPath and ComputeTrajectories
//	config/           - YAML city description, embedded reference city
//	cmd/citywalk/     - CLI, text map and JSON API (-serve)
//
// Quick start:
//
//	f, _ := config.Default()
//	city, _ := f.Build()
//	tr, _ := city.ComputeTrajectories("La Pasión")
//	fmt.Println(tr.Earlier, tr.Delta) // Javier 14
//
// Install:
//
//	go install github.com/katalvlaran/citywalk/cmd/citywalk@latest
package citywalk
