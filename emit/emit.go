// Package emit assembles the generated header around the repaired
// declarations.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/mpheader"
)

// ExposBlock defines MP_EXPOS_DATA, which the manual references but never
// declares. It is appended after the labelled declarations.
const ExposBlock = `
typedef struct {
    /** Target control group which executes the increment value move */
    CTRLG_T ctrl_grp;
    /** Master side control group for coordinated (synchronized) operation */
    CTRLG_T m_ctrl_grp;
    /** Slave side control group for coordinated (synchronized) operation */
    CTRLG_T s_ctrl_grp;
    MP_GRP_POS_INFO grp_pos_info[MP_GRP_NUM];
} MP_EXPOS_DATA;`

// Trailer maps the byte order helpers to the controller's endianness.
const Trailer = `
#if BYTE_ORDER == BIG_ENDIAN
#ifndef FS100
#error Somehow we think that this controller is Big Endian?
#endif
#define mpHtonl(n) (n)
#define mpHtons(n) (n)
#define mpNtohl(n) (n)
#define mpNtohs(n) (n)
#else
#ifdef FS100
#error Somehow we think that this controller is Little Endian?
#endif
#define mpHtonl __builtin_bswap32
#define mpHtons __builtin_bswap16
#define mpNtohl __builtin_bswap32
#define mpNtohs __builtin_bswap16
#endif`

// Guard returns the preprocessor check that stops the header from being
// used with a controller other than product.
func Guard(product string) string {
	switch product {
	case "YRC1000", "YRC1000micro":
		return "#if !defined(YRC1000) && !defined(YRC1000u)\n" +
			"#error You must specify the robot type. This file only works with YRC1000 and YRC1000u controllers.\n" +
			"#endif"
	}
	return fmt.Sprintf("#ifndef %s\n"+
		"#error You must specify the robot type. This file only works with %s controllers.\n"+
		"#endif", product, product)
}

// Body joins the extracted declarations: the labelled ones one per line,
// then ExposBlock, then the headed ones.
func Body(ext *mpheader.Extraction) string {
	var b strings.Builder
	for _, d := range ext.Labeled {
		b.WriteString(d.Text)
		b.WriteByte('\n')
	}
	b.WriteString(ExposBlock)
	for _, d := range ext.Headed {
		b.WriteByte('\n')
		b.WriteString(d.Text)
	}
	return b.String()
}

// Generator produces a header from a parsed manual.
type Generator struct {
	Extractor mpheader.Extractor
	Repairer  mpheader.Repairer
}

// Generate writes the header for doc to w: the preamble, the guard, the
// repaired body and the trailer, each followed by a newline.
func (g *Generator) Generate(doc mpheader.Document, w io.Writer) error {
	product, err := doc.ProductName()
	if err != nil {
		return err
	}

	ext, err := g.Extractor.Extract(doc)
	if err != nil {
		return err
	}
	body := g.Repairer.Repair(Body(ext))

	for _, part := range []string{Preamble, Guard(product), body, Trailer} {
		if _, err := io.WriteString(w, part+"\n"); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	return nil
}
