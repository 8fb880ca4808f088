package iterxml

import (
	"bytes"
	"encoding/xml"
	"strings"

	"github.com/SuwenJunliu/LASIF/internal/domain"
	"github.com/SuwenJunliu/LASIF/internal/ports"
)

// Codec reads and writes the iteration XML format.
type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

var _ ports.IterationCodec = (*Codec)(nil)

type xmlIteration struct {
	XMLName       xml.Name         `xml:"iteration"`
	Name          string           `xml:"iteration_name"`
	Description   string           `xml:"iteration_description"`
	Comments      []string         `xml:"comment"`
	Preprocessing xmlPreprocessing `xml:"data_preprocessing"`
	SourceTime    string           `xml:"source_time_function"`
	Solver        xmlSolver        `xml:"solver_parameters"`
	Events        []xmlEvent       `xml:"event"`
}

type xmlPreprocessing struct {
	HighpassPeriod float64 `xml:"highpass_period"`
	LowpassPeriod  float64 `xml:"lowpass_period"`
}

type xmlSolver struct {
	Solver string `xml:"solver"`
}

type xmlEvent struct {
	Name           string       `xml:"event_name"`
	Weight         float64      `xml:"event_weight"`
	TimeCorrection float64      `xml:"time_correction_in_s"`
	Stations       []xmlStation `xml:"station"`
}

type xmlStation struct {
	ID             string  `xml:"station_id"`
	Weight         float64 `xml:"station_weight"`
	TimeCorrection float64 `xml:"time_correction_in_s"`
}

func (c *Codec) Encode(it domain.Iteration) ([]byte, error) {
	doc := xmlIteration{
		Name:        it.Name,
		Description: it.Description,
		Comments:    it.Comments,
		Preprocessing: xmlPreprocessing{
			HighpassPeriod: it.MaxPeriod,
			LowpassPeriod:  it.MinPeriod,
		},
		SourceTime: it.SourceTimeFunction,
		Solver:     xmlSolver{Solver: it.Solver},
		Events:     make([]xmlEvent, 0, len(it.Events)),
	}

	for _, ev := range it.Events {
		xe := xmlEvent{
			Name:           ev.Name,
			Weight:         ev.Weight,
			TimeCorrection: ev.TimeCorrection,
			Stations:       make([]xmlStation, 0, len(ev.Stations)),
		}
		for _, st := range ev.Stations {
			xe.Stations = append(xe.Stations, xmlStation(st))
		}
		doc.Events = append(doc.Events, xe)
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version='1.0' encoding='UTF-8'?>` + "\n")

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, &domain.OpError{
			Op:   "iterxml.encode",
			Kind: domain.KindExecution,
			Key:  it.Name,
			Err:  err,
		}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (c *Codec) Decode(b []byte) (domain.Iteration, error) {
	var doc xmlIteration
	if err := xml.Unmarshal(b, &doc); err != nil {
		return domain.Iteration{}, &domain.OpError{
			Op:   "iterxml.decode",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	it := domain.Iteration{
		Name:               strings.TrimSpace(doc.Name),
		Description:        doc.Description,
		Comments:           append([]string{}, doc.Comments...),
		Solver:             strings.TrimSpace(doc.Solver.Solver),
		MinPeriod:          doc.Preprocessing.LowpassPeriod,
		MaxPeriod:          doc.Preprocessing.HighpassPeriod,
		SourceTimeFunction: doc.SourceTime,
		Events:             make([]domain.IterationEvent, 0, len(doc.Events)),
	}

	for _, xe := range doc.Events {
		ev := domain.IterationEvent{
			Name:           strings.TrimSpace(xe.Name),
			Weight:         xe.Weight,
			TimeCorrection: xe.TimeCorrection,
			Stations:       make([]domain.IterationStation, 0, len(xe.Stations)),
		}
		for _, xs := range xe.Stations {
			st := domain.IterationStation(xs)
			st.ID = strings.TrimSpace(st.ID)
			ev.Stations = append(ev.Stations, st)
		}
		it.Events = append(it.Events, ev)
	}

	return it, nil
}
