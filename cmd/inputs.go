package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/fastpick-sim/fastpick-sim/picksim"
	"github.com/fastpick-sim/fastpick-sim/slotting"
)

// The readers here are the "raw data collaborator" in front of the core:
// they parse already-cleaned CSV into typed records and fail loudly on
// malformed rows. Column repair and schema inference belong to whatever
// produced the files, never to this tool.

// ReadTransactionsCSV parses pick transactions with the header
// part_no,quantity,shipping_day,delivery_no,location.
func ReadTransactionsCSV(path string) ([]slotting.Transaction, error) {
	rows, err := readAll(path, 5)
	if err != nil {
		return nil, err
	}
	txns := make([]slotting.Transaction, 0, len(rows))
	for i, row := range rows {
		qty, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: quantity %q: %w", path, i+2, row[1], err)
		}
		day, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: shipping_day %q: %w", path, i+2, row[2], err)
		}
		txns = append(txns, slotting.Transaction{
			PartNo:      row[0],
			Quantity:    qty,
			ShippingDay: day,
			DeliveryNo:  row[3],
			Location:    row[4],
		})
	}
	logrus.Infof("read %d transactions from %s", len(txns), path)
	return txns, nil
}

// ReadGeometryCSV parses the item geometry table with the header
// part_no,part_name,box_volume_m3,pieces_per_box,box_width_m,box_depth_m,
// box_height_m,height_m,length_m,width_m.
func ReadGeometryCSV(path string) ([]slotting.Geometry, error) {
	rows, err := readAll(path, 10)
	if err != nil {
		return nil, err
	}
	geometry := make([]slotting.Geometry, 0, len(rows))
	for i, row := range rows {
		g := slotting.Geometry{PartNo: row[0], PartName: row[1]}
		floats := []struct {
			dst *float64
			col int
		}{
			{&g.BoxVolumeM3, 2}, {&g.BoxWidthM, 4}, {&g.BoxDepthM, 5},
			{&g.BoxHeightM, 6}, {&g.HeightM, 7}, {&g.LengthM, 8}, {&g.WidthM, 9},
		}
		for _, f := range floats {
			v, err := strconv.ParseFloat(row[f.col], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %q: %w", path, i+2, f.col+1, row[f.col], err)
			}
			*f.dst = v
		}
		ppb, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: pieces_per_box %q: %w", path, i+2, row[3], err)
		}
		g.PiecesPerBox = ppb
		geometry = append(geometry, g)
	}
	logrus.Infof("read %d geometry rows from %s", len(geometry), path)
	return geometry, nil
}

// ReadPickLinesCSV parses pick lines (part_no,quantity) for the comparison
// simulation, attaching each line's cabinet walking distance from the
// placement table. Lines for parts outside the placement table keep the
// layout's fallback distance via cabinet 0 lookup semantics; they are
// counted and logged.
func ReadPickLinesCSV(path string, cabinetByPart map[string]int, layout *slotting.Layout) ([]picksim.PickOrder, error) {
	rows, err := readAll(path, 2)
	if err != nil {
		return nil, err
	}
	orders := make([]picksim.PickOrder, 0, len(rows))
	unknown := 0
	for i, row := range rows {
		qty, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: quantity %q: %w", path, i+2, row[1], err)
		}
		cab, ok := cabinetByPart[row[0]]
		distance := layout.WalkingDistance(cab)
		if !ok {
			unknown++
			distance = slotting.AverageWalkingDistanceM
		}
		orders = append(orders, picksim.PickOrder{
			ID:               i + 1,
			PartNo:           row[0],
			Quantity:         qty,
			CabinetDistanceM: distance,
		})
	}
	if unknown > 0 {
		logrus.Warnf("%d pick lines reference parts without a placement; using average walking distance", unknown)
	}
	logrus.Infof("read %d pick lines from %s", len(orders), path)
	return orders, nil
}

// ReadPlacementCSV parses a placement table previously written by
// WritePlacementCSV, needing only the part number and cabinet columns.
func ReadPlacementCSV(path string) ([]slotting.PlacementRow, error) {
	rows, err := readAll(path, 9)
	if err != nil {
		return nil, err
	}
	placements := make([]slotting.PlacementRow, 0, len(rows))
	for i, row := range rows {
		cab, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: cabinet_id %q: %w", path, i+2, row[1], err)
		}
		floor, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: floor_id %q: %w", path, i+2, row[2], err)
		}
		placements = append(placements, slotting.PlacementRow{
			PartNo:    row[0],
			CabinetID: cab,
			FloorID:   floor,
		})
	}
	return placements, nil
}

// readAll reads a headered CSV and checks every row has enough columns.
func readAll(path string, minCols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil { // header
		return nil, fmt.Errorf("%s: reading header: %w", path, err)
	}
	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if len(row) < minCols {
			return nil, fmt.Errorf("%s: row %d has %d columns, want at least %d", path, len(rows)+2, len(row), minCols)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
