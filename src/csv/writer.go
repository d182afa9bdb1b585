package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/BielosX/wombat/pokedex/src/parquet"
	"github.com/BielosX/wombat/pokedex/src/pokedex"
	"github.com/BielosX/wombat/pokedex/src/utils"
	"github.com/xitongsys/parquet-go-source/buffer"
)

// PokemonWriter renders parquet.Pokemon rows as CSV, using the parquet
// column names as header. The header is emitted once, before the first row
// or on Finish for an empty export.
type PokemonWriter struct {
	buffer        *buffer.BufferFile
	writer        *csv.Writer
	fields        []reflect.StructField
	headerWritten bool
	rows          int
}

const InitialCapacity = 1024 * 1024

func NewPokemonWriter() PokemonWriter {
	bufferFile := buffer.NewBufferFileCapacity(InitialCapacity)
	writer := csv.NewWriter(bufferFile)
	return PokemonWriter{
		buffer: bufferFile,
		writer: writer,
		fields: utils.GetFields(parquet.Pokemon{}),
	}
}

func (w *PokemonWriter) writeHeader() error {
	if w.headerWritten {
		return nil
	}
	w.headerWritten = true
	return w.writer.Write(utils.ColumnNames(parquet.Pokemon{}))
}

func (w *PokemonWriter) Write(pokemon parquet.Pokemon) error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	value := reflect.ValueOf(pokemon)
	converted := make([]string, 0, len(w.fields))
	for _, field := range w.fields {
		converted = append(converted, fmt.Sprint(value.FieldByIndex(field.Index).Interface()))
	}
	if err := w.writer.Write(converted); err != nil {
		return err
	}
	w.rows++
	return nil
}

// WriteRecord flattens an aggregated record into one row.
func (w *PokemonWriter) WriteRecord(record *pokedex.Record) error {
	return w.Write(parquet.ToPokemon(record))
}

func (w *PokemonWriter) Rows() int {
	return w.rows
}

func (w *PokemonWriter) Finish() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return err
	}
	_, err := w.buffer.Seek(0, io.SeekStart)
	return err
}

func (w *PokemonWriter) Size() int {
	return len(w.buffer.Bytes())
}

func (w *PokemonWriter) BufferReader() io.Reader {
	return w.buffer
}
