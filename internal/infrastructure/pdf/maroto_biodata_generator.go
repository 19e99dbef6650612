// Package pdf mencetak lembar biodata karyawan sebagai dokumen A4.
//
// Layout halaman:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: BIODATA KARYAWAN │ NIK + tanggal cetak             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATA PRIBADI: nama, tempat/tanggal lahir, kelamin, alamat  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABEL PENDIDIKAN: jenjang | sekolah | masuk | lulus        │
//	│  TABEL PEKERJAAN : perusahaan | jabatan | periode | gaji    │
//	│  TABEL KELUARGA  : hubungan | nama | tanggal lahir          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jnasution/hris-api/internal/domain/entity"
)

// ── Palet warna ───────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 139}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var printerID = message.NewPrinter(language.Indonesian)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoBiodataGenerator implementasi usecase.BiodataPDFGenerator dengan Maroto v2.
type MarotoBiodataGenerator struct{}

// NewMarotoBiodataGenerator membangun generator.
func NewMarotoBiodataGenerator() *MarotoBiodataGenerator { return &MarotoBiodataGenerator{} }

// GenerateBiodataPDF menyusun dokumen dan mengembalikan bytes-nya.
func (g *MarotoBiodataGenerator) GenerateBiodataPDF(
	_ context.Context,
	e *entity.Employee,
	pendidikan []*entity.Pendidikan,
	pekerjaan []*entity.Pekerjaan,
	keluarga []*entity.Keluarga,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Biodata Karyawan", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(e))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(dataPribadiRows(e)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("RIWAYAT PENDIDIKAN"))
	if len(pendidikan) == 0 {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(pendidikanHeaderRow())
		for _, p := range pendidikan {
			m.AddRows(pendidikanRow(p))
		}
	}

	m.AddRows(sectionTitleRow("RIWAYAT PEKERJAAN"))
	if len(pekerjaan) == 0 {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(pekerjaanHeaderRow())
		for _, p := range pekerjaan {
			m.AddRows(pekerjaanRow(p))
		}
	}

	m.AddRows(sectionTitleRow("ANGGOTA KELUARGA"))
	if len(keluarga) == 0 {
		m.AddRows(emptyRow())
	} else {
		m.AddRows(keluargaHeaderRow())
		for _, k := range keluarga {
			m.AddRows(keluargaRow(k))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate dokumen: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Bagian ────────────────────────────────────────────────────────────────────

// headerRow: judul (kiri) dan NIK + tanggal cetak (kanan).
func headerRow(e *entity.Employee) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("BIODATA KARYAWAN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(e.NamaLengkap, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("NIK: "+e.NIK, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Dicetak: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// dataPribadiRows: pasangan label/nilai data pribadi.
func dataPribadiRows(e *entity.Employee) []core.Row {
	kelamin := e.JenisKelamin
	if kelamin == "L" {
		kelamin = "Laki-laki"
	} else if kelamin == "P" {
		kelamin = "Perempuan"
	}
	fields := [][2]string{
		{"Nama Lengkap", e.NamaLengkap},
		{"Tempat, Tanggal Lahir", e.TempatLahir + ", " + e.TanggalLahir.Format("02/01/2006")},
		{"Jenis Kelamin", kelamin},
		{"Alamat", e.Alamat},
	}
	rows := make([]core.Row, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, row.New(6).Add(
			col.New(4).Add(text.New(f[0], props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(8).Add(text.New(": "+f[1], props.Text{Size: 9, Top: 1})),
		))
	}
	return rows
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3,
		}),
	))
}

func emptyRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("(belum ada data)", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1,
	}))
}

func pendidikanHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Jenjang", 2, align.Left),
		headerCell("Nama Sekolah", 6, align.Left),
		headerCell("Masuk", 2, align.Center),
		headerCell("Lulus", 2, align.Center),
	)
}

func pendidikanRow(p *entity.Pendidikan) core.Row {
	lulus := "-"
	if p.TahunLulus != nil {
		lulus = strconv.Itoa(*p.TahunLulus)
	}
	return row.New(6).Add(
		cell(p.Jenjang, 2, align.Left),
		cell(p.NamaSekolah, 6, align.Left),
		cell(strconv.Itoa(p.TahunMasuk), 2, align.Center),
		cell(lulus, 2, align.Center),
	)
}

func pekerjaanHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Perusahaan", 4, align.Left),
		headerCell("Jabatan", 3, align.Left),
		headerCell("Periode", 2, align.Center),
		headerCell("Gaji", 3, align.Right),
	)
}

func pekerjaanRow(p *entity.Pekerjaan) core.Row {
	periode := strconv.Itoa(p.TahunMasuk) + " - "
	if p.TahunKeluar != nil {
		periode += strconv.Itoa(*p.TahunKeluar)
	} else {
		periode += "skrg"
	}
	gaji := "-"
	if p.Gaji != nil {
		gaji = formatRupiah(p.Gaji.IntPart())
	}
	return row.New(6).Add(
		cell(p.NamaPerusahaan, 4, align.Left),
		cell(p.Jabatan, 3, align.Left),
		cell(periode, 2, align.Center),
		cell(gaji, 3, align.Right),
	)
}

func keluargaHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Hubungan", 3, align.Left),
		headerCell("Nama", 6, align.Left),
		headerCell("Tanggal Lahir", 3, align.Center),
	)
}

func keluargaRow(k *entity.Keluarga) core.Row {
	lahir := "-"
	if k.TanggalLahir != nil {
		lahir = k.TanggalLahir.Format("02/01/2006")
	}
	return row.New(6).Add(
		cell(k.Hubungan, 3, align.Left),
		cell(k.Nama, 6, align.Left),
		cell(lahir, 3, align.Center),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatRupiah memformat nominal dengan pemisah ribuan lokal Indonesia.
// Ej: 2500000 -> "Rp 2.500.000".
func formatRupiah(n int64) string {
	return printerID.Sprintf("Rp %d", n)
}
