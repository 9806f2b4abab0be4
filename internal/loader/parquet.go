package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/go-logr/logr"

	"github.com/bjaus/tabpeek/internal/frame"
)

// maxBatchSize caps the rows decoded per record batch.
const maxBatchSize = 1 << 16

// readParquet reads the projected leaf columns of a Parquet file, stopping
// once req.Budget rows are kept. Column order and duplicates of the
// projection are applied by the caller.
func readParquet(ctx context.Context, r parquet.ReaderAtSeeker, req Request, mem memory.Allocator) (*frame.Frame, error) {
	log := logr.FromContextOrDiscard(ctx)

	pf, err := file.NewParquetReader(r)
	if err != nil {
		return nil, err
	}
	defer pf.Close()
	log.V(2).Info("read parquet footer", "rows", pf.NumRows(), "rowGroups", pf.NumRowGroups())

	var leaves []int
	if req.Projection != nil {
		sc := pf.MetaData().Schema
		for _, name := range req.Projection {
			i := sc.ColumnIndexByName(name)
			if i < 0 {
				return nil, fmt.Errorf("%w: %q", frame.ErrColumnNotFound, name)
			}
			if !slices.Contains(leaves, i) {
				leaves = append(leaves, i)
			}
		}
		slices.Sort(leaves)
	}

	// Readers reserve a full batch before decoding it.
	props := pqarrow.ArrowReadProperties{}
	if limit, ok := req.Budget.Limit(); ok {
		props.BatchSize = int64(max(1, min(limit, int(pf.NumRows()), maxBatchSize)))
	}
	fr, err := pqarrow.NewFileReader(pf, props, mem)
	if err != nil {
		return nil, err
	}
	rr, err := fr.GetRecordReader(ctx, leaves, nil)
	if err != nil {
		return nil, err
	}
	defer rr.Release()

	schema := rr.Schema()
	cols := make([]*frame.Column, schema.NumFields())
	for i, field := range schema.Fields() {
		cols[i] = frame.NewColumn(field.Name, kindOf(field.Type))
	}

	rows := 0
	for req.Budget.Allows(rows) && rr.Next() {
		rec := rr.Record()
		n := int(rec.NumRows())
		if limit, ok := req.Budget.Limit(); ok {
			n = min(n, limit-rows)
		}
		for i, col := range cols {
			appendArrow(col, rec.Column(i), n)
		}
		rows += n
	}
	if err := rr.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	log.V(2).Info("read parquet records", "rows", rows, "columns", len(cols))
	return frame.New(cols...)
}

func kindOf(dt arrow.DataType) frame.Kind {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return frame.KindInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return frame.KindFloat
	case arrow.BOOL:
		return frame.KindBool
	case arrow.STRING, arrow.LARGE_STRING, arrow.BINARY, arrow.LARGE_BINARY:
		return frame.KindString
	case arrow.DATE32, arrow.DATE64:
		return frame.KindDate
	case arrow.TIMESTAMP:
		return frame.KindDatetime
	default:
		return frame.KindOther
	}
}

// appendArrow copies the first n values of arr into c. Numeric arrays must
// land in numeric columns, see kindOf.
func appendArrow(c *frame.Column, arr arrow.Array, n int) {
	value := cellFunc(arr)
	for i := range n {
		if arr.IsNull(i) {
			c.AppendNull()
			continue
		}
		c.Append(value(i))
	}
}

func cellFunc(arr arrow.Array) func(i int) (string, float64) {
	integer := func(v int64) (string, float64) { return strconv.FormatInt(v, 10), float64(v) }
	unsigned := func(v uint64) (string, float64) { return strconv.FormatUint(v, 10), float64(v) }
	float := func(v float64, bits int) (string, float64) { return strconv.FormatFloat(v, 'f', -1, bits), v }

	switch a := arr.(type) {
	case *array.Int8:
		return func(i int) (string, float64) { return integer(int64(a.Value(i))) }
	case *array.Int16:
		return func(i int) (string, float64) { return integer(int64(a.Value(i))) }
	case *array.Int32:
		return func(i int) (string, float64) { return integer(int64(a.Value(i))) }
	case *array.Int64:
		return func(i int) (string, float64) { return integer(a.Value(i)) }
	case *array.Uint8:
		return func(i int) (string, float64) { return unsigned(uint64(a.Value(i))) }
	case *array.Uint16:
		return func(i int) (string, float64) { return unsigned(uint64(a.Value(i))) }
	case *array.Uint32:
		return func(i int) (string, float64) { return unsigned(uint64(a.Value(i))) }
	case *array.Uint64:
		return func(i int) (string, float64) { return unsigned(a.Value(i)) }
	case *array.Float16:
		return func(i int) (string, float64) { return float(float64(a.Value(i).Float32()), 32) }
	case *array.Float32:
		return func(i int) (string, float64) { return float(float64(a.Value(i)), 32) }
	case *array.Float64:
		return func(i int) (string, float64) { return float(a.Value(i), 64) }
	case *array.Boolean:
		return func(i int) (string, float64) { return strconv.FormatBool(a.Value(i)), 0 }
	case *array.String:
		return func(i int) (string, float64) { return a.Value(i), 0 }
	case *array.LargeString:
		return func(i int) (string, float64) { return a.Value(i), 0 }
	case *array.Binary:
		return func(i int) (string, float64) { return string(a.Value(i)), 0 }
	case *array.LargeBinary:
		return func(i int) (string, float64) { return string(a.Value(i)), 0 }
	case *array.Date32:
		return func(i int) (string, float64) { return a.Value(i).ToTime().Format("2006-01-02"), 0 }
	case *array.Date64:
		return func(i int) (string, float64) { return a.Value(i).ToTime().Format("2006-01-02"), 0 }
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return func(i int) (string, float64) {
			return a.Value(i).ToTime(unit).Format("2006-01-02 15:04:05.999999999"), 0
		}
	default:
		return func(i int) (string, float64) { return arr.ValueStr(i), 0 }
	}
}
