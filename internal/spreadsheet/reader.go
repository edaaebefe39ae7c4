// Package spreadsheet 将上传的 xlsx 表格解析为按列名访问的行
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook 工作簿中没有任何工作表
var ErrEmptyWorkbook = errors.New("workbook has no sheet")

// Row 单行数据，键为规范化后的列名
type Row map[string]string

// Get 读取列值，列不存在时返回空串
func (r Row) Get(column string) string {
	return r[NormalizeColumn(column)]
}

// Table 首个工作表的解析结果
type Table struct {
	Columns []string
	Rows    []Row
	index   map[string]int
}

// NormalizeColumn 列名统一为去空白的小写形式
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// HasColumn 判断表头是否包含指定列（大小写不敏感）
func (t *Table) HasColumn(column string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[NormalizeColumn(column)]
	return ok
}

// MissingColumn 返回第一个缺失的列名，全部存在时返回空串
func (t *Table) MissingColumn(columns ...string) string {
	for _, column := range columns {
		if !t.HasColumn(column) {
			return NormalizeColumn(column)
		}
	}
	return ""
}

// Read 解析首个工作表：第一行为表头，其余每行的单元格均去除首尾空白
func Read(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrEmptyWorkbook
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return buildTable(rows), nil
}

func buildTable(rows [][]string) *Table {
	table := &Table{index: map[string]int{}}
	if len(rows) == 0 {
		return table
	}

	for i, cell := range rows[0] {
		name := NormalizeColumn(cell)
		if name == "" {
			continue
		}
		// 重名列以靠后的为准
		if _, exists := table.index[name]; !exists {
			table.Columns = append(table.Columns, name)
		}
		table.index[name] = i
	}

	for _, cells := range rows[1:] {
		row := make(Row, len(table.index))
		for name, i := range table.index {
			if i < len(cells) {
				row[name] = strings.TrimSpace(cells[i])
			} else {
				row[name] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
