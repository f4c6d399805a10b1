package scanning

import (
	"bytes"
	"testing"
	"time"

	"scan-verifier/core/manifest"
	"scan-verifier/core/session"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var manifestRows = [][]string{
	{"Номер коробки", "ID отправления", "Номер отправления", "Штрихкод", "Статус"},
	{"B-1", "S-1", "SH-1001", "4600000000017", "0"},
	{"B-2", "S-2", "SH-1002", "4600000000024", "недопущен"},
	{"B-3", "S-2", "SH-1003", "4600000000031", "досмотр"},
}

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()
	sheet := wb.GetSheetName(wb.GetActiveSheetIndex())

	for i, r := range rows {
		row := make([]interface{}, 0, len(r))
		for _, v := range r {
			row = append(row, v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow(sheet, cell, &row))
	}

	buf, err := wb.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
}

func newTestService(t *testing.T, store session.Store, archiver Archiver) *Service {
	t.Helper()
	sess := session.New(store, zap.NewNop())
	svc := NewService(sess, manifest.NewReader(nil), archiver, nil, zap.NewNop())
	svc.SetClock(fixedNow)
	return svc
}
