package csvio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

func TestReadRecords(t *testing.T) {
	doc := "name,unit,category,brand,stock,status,image\n" +
		"Widget,pcs,Tools,Acme,5,In Stock,w.png\n" +
		"\"Comma, Inc\",box,Office,\"Big \"\"B\"\"\",12,,\n"

	records, err := ReadRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{Name: "Widget", Unit: "pcs", Category: "Tools", Brand: "Acme", Stock: "5", Status: "In Stock", Image: "w.png"}, records[0])
	assert.Equal(t, "Comma, Inc", records[1].Name)
	assert.Equal(t, `Big "B"`, records[1].Brand)
	assert.Equal(t, "", records[1].Status)
}

func TestReadRecordsHeaderOrderAndExtraColumns(t *testing.T) {
	doc := "stock,notes,brand,name,category,unit\n" +
		"3,ignore me,Acme,Nut,Hardware,bag\n"

	records, err := ReadRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Record{Name: "Nut", Unit: "bag", Category: "Hardware", Brand: "Acme", Stock: "3"}, records[0])
}

func TestReadRecordsMissingColumnsAreEmpty(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("name,unit\nBolt,box\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bolt", records[0].Name)
	assert.Equal(t, "", records[0].Category)
	assert.Equal(t, "", records[0].Stock)
}

func TestReadRecordsStripsBOMAndCRLF(t *testing.T) {
	doc := "\ufeffname,unit,category,brand,stock\r\nWidget,pcs,Tools,Acme,1\r\n"

	records, err := ReadRecords(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Widget", records[0].Name)
	assert.Equal(t, "1", records[0].Stock)
}

func TestReadRecordsEmpty(t *testing.T) {
	for _, doc := range []string{"", "\ufeff", "\n\n", "name,unit,category,brand,stock\n"} {
		records, err := ReadRecords(strings.NewReader(doc))
		require.NoError(t, err, "%q", doc)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	}
}

func TestReadRecordsPreservesOrder(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,unit,category,brand,stock\n")
	names := []string{"c", "a", "b", "e", "d"}
	for _, n := range names {
		b.WriteString(n + ",u,c,b,1\n")
	}

	records, err := ReadRecords(strings.NewReader(b.String()))
	require.NoError(t, err)
	var got []string
	for _, r := range records {
		got = append(got, r.Name)
	}
	assert.Equal(t, names, got)
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"plain":        `"plain"`,
		`He said "hi"`: `"He said \"hi\""`,
		"a,b":          `"a,b"`,
		"<b>&</b>":     `"<b>&</b>"`,
		"line\nbreak":  `"line\nbreak"`,
		`back\slash`:   `"back\\slash"`,
		"":             `""`,
	}
	for in, want := range tests {
		assert.Equal(t, want, Quote(in))

		var back string
		require.NoError(t, json.Unmarshal([]byte(Quote(in)), &back))
		assert.Equal(t, in, back)
	}
}

func TestWriteAll(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.FixedZone("CET", 3600))
	updated := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{
			ID: 1, Name: `He said "hi"`, Unit: "pcs", Category: "Tools", Brand: "Acme",
			Stock: 5, Status: "In Stock", Image: "", CreatedAt: created, UpdatedAt: updated,
		},
		{
			ID: 7, Name: "Bolt, large", Unit: "box", Category: "Hardware", Brand: "Acme",
			Stock: 0, Status: "Out of Stock", Image: "b.png", CreatedAt: updated, UpdatedAt: updated,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, products))

	want := "id,name,unit,category,brand,stock,status,image,createdAt,updatedAt\n" +
		`1,"He said \"hi\"","pcs","Tools","Acme",5,"In Stock","","2024-01-15T09:30:00.123Z","2024-02-01T00:00:00.000Z"` + "\n" +
		`7,"Bolt, large","box","Hardware","Acme",0,"Out of Stock","b.png","2024-02-01T00:00:00.000Z","2024-02-01T00:00:00.000Z"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteAllEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAll(&buf, nil))
	assert.Equal(t, "id,name,unit,category,brand,stock,status,image,createdAt,updatedAt\n", buf.String())
}
