package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unixdj/qrmodel"
	"github.com/unixdj/qrmodel/coding"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	log "github.com/sirupsen/logrus"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	lev     qr.Level        // QR correction level
	cs      qr.Charset      // input conversion
	format  int             // output file format
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	debug   bool            // debug logging
}{
	border: 4,
	inc:    [2]int{1, 1},
	bg:     rgba{0xff, 0xff, 0xff, 0xff},
	fg:     rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode, converted from
UTF-8 to the charset given with -e.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

func (c *rgba) String() string {
	switch {
	case *c == (rgba{0x00, 0x00, 0x00, 0xff}):
		return "black"
	case *c == (rgba{0xff, 0xff, 0xff, 0xff}):
		return "white"
	case c.A == 0xff:
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var colourNames = map[string]rgba{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"darkred": {0x8b, 0x00, 0x00, 0xff},
	"none":    {0x00, 0x00, 0x00, 0x00},
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = colourNames[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii", "roles",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := fmt.Fprint(w, c)
		return err
	},
	ascii,
	roles,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.debug, 'd', "log the chosen symbol and mask penalties")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	cs := getopt.Enum('e', qr.Charsets(), "utf8",
		"charset to convert the data to: "+
			strings.Join(qr.Charsets(), ", "), "charset")
	scale := getopt.Unsigned('s', 8,
		&getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 12},
		`image pixels (type eps[i]: points) per QR module; `+
			`ignored for types utf8[i], ascii[i] and roles`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`"roles" prints the role of each module and ignores -f and -r; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.scale = int(*scale)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	var err error
	if g.cs, err = qr.ParseCharset(*cs); err != nil {
		log.Fatal(err)
	}
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	if g.debug {
		log.SetLevel(log.DebugLevel)
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	c, err := qr.EncodeText(s, g.cs, g.lev)
	if err != nil {
		log.WithField("charset", g.cs).Fatal(err)
	}
	for m, p := range c.Penalties {
		log.WithFields(log.Fields{
			"mask":    m,
			"penalty": p,
		}).Debug("mask evaluated")
	}
	log.WithFields(log.Fields{
		"version": c.Version,
		"level":   c.Level,
		"mask":    c.Mask,
		"penalty": c.Penalties[c.Mask],
		"bytes":   c.Version.Bytes(),
	}).Debug("symbol encoded")
	write(c)
}

func write(c *qr.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatal(err)
		}
	}
	if formats[g.format<<1] != "roles" {
		c = randr(c)
	}
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	c.Border = g.border
	err := encoders[g.format](c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.WithField("file", g.fn).Fatal(err)
	}
}

// randr rotates and reflects c.
func randr(c *qr.Code) *qr.Code {
	cx, inc := g.cx, g.inc
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	b := make([]byte, 0, len(c.Bitmap))
	var coord [2]int
	siz := c.Size
	coord[cx^1] = (siz - 1) & inc[1]
	for y := 0; y < siz; y++ {
		coord[cx] = (siz - 1) & inc[0]
		var bb byte
		for x := 0; x < siz; x++ {
			bb <<= 1
			if c.Black(coord[0], coord[1]) {
				bb |= 1
			}
			if x&7 == 7 {
				b = append(b, bb)
			}
			coord[cx] += inc[0]
		}
		if siz&7 != 0 {
			b = append(b, bb<<(8-siz&7))
		}
		coord[cx^1] += inc[1]
	}
	c.Bitmap = b
	c.Stride = (siz + 7) / 8
	return c
}

// darkRuns returns the runs of dark modules in row y as pairs of
// light modules skipped since the previous run and run length.
func darkRuns(c *qr.Code, y int) [][2]int {
	var runs [][2]int
	for x, end := 0, 0; x < c.Size; {
		for x < c.Size && !c.Black(x, y) {
			x++
		}
		if x == c.Size {
			break
		}
		d := x
		for x < c.Size && c.Black(x, y) {
			x++
		}
		runs = append(runs, [2]int{d - end, x - d})
		end = x
	}
	return runs
}

// epsColours returns the background and foreground colours as RGB
// fractions, or ok == false for plain black on white.
func epsColours(c *qr.Code) (bg, fg [3]float64, ok bool) {
	if c.Palette == nil && !c.Reverse {
		return bg, fg, false
	}
	pal := [2]color.Color{color.White, color.Black}
	if c.Palette != nil {
		pal = *c.Palette
	}
	if c.Reverse {
		pal[0], pal[1] = pal[1], pal[0]
	}
	frac := func(col color.Color) [3]float64 {
		cr, cg, cb, _ := col.RGBA()
		return [3]float64{float64(cr) / 0xffff, float64(cg) / 0xffff,
			float64(cb) / 0xffff}
	}
	return frac(pal[0]), frac(pal[1]), true
}

// eps draws the code centred on a US Letter page, one stroke per run
// of dark modules.  With colours set the quiet zone is painted as a
// single thick line.
func eps(c *qr.Code, w io.Writer) error {
	const midx, midy = 306, 396
	siz := c.Size
	scale := c.Scale
	bord := c.Border
	xorig := (midx*2 - (siz+2*bord)*scale) / 2
	yorig := (midy*2 - (siz+2*bord)*scale) / 2
	var b bytes.Buffer
	fmt.Fprintf(&b, `%%!PS-Adobe-2.0 EPSF-2.0
%%%%Creator: QR https://github.com/unixdj/qrmodel
%%%%Title: QR Code version %s-%s mask %s
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%EndProlog
<< >> begin
gsave
%g %g translate
%d dup neg scale
/row 0 def
/p { 0 rmoveto 0 rlineto } def
/r { 0 row 1 add dup /row exch def moveto } def
`,
		c.Version, c.Level, c.Mask,
		xorig-1, yorig-1, midx*2-xorig, midy*2-yorig,
		midx-float64(siz*scale)/2, midy+float64((siz-1)*scale)/2-1,
		scale)
	if bg, fg, ok := epsColours(c); ok {
		fmt.Fprintf(&b, `gsave
newpath %d %d moveto
%d dup neg scale
%.3g %.3g %.3g setrgbcolor
1 0 rlineto stroke
grestore
%.3g %.3g %.3g setrgbcolor
`,
			-bord, siz/2, siz+2*bord,
			bg[0], bg[1], bg[2], fg[0], fg[1], fg[2])
	}
	b.WriteString("newpath 0 0 moveto\n")
	for y := 0; y < siz; y++ {
		for _, r := range darkRuns(c, y) {
			fmt.Fprintf(&b, "%d %d p ", r[1], r[0])
		}
		b.WriteString("r\n")
	}
	b.WriteString("stroke grestore\nend\n%%Trailer\n")
	_, err := w.Write(b.Bytes())
	return err
}

func ascii(c *qr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

var roleChars = [...]byte{
	coding.Data:            'd',
	coding.FinderCenter:    'c',
	coding.Finder:          'f',
	coding.AlignmentCenter: 'x',
	coding.Alignment:       'a',
	coding.Timing:          't',
	coding.Format:          'i',
	coding.VersionInfo:     'v',
}

// roles prints a letter for the role of each module, upper case where
// the module is dark.
func roles(c *qr.Code, w io.Writer) error {
	r := c.Roles()
	siz := c.Size
	var b bytes.Buffer
	b.Grow((siz + 1) * siz)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			ch := roleChars[r[y*siz+x]]
			if c.IsDark(y, x) {
				ch -= 'a' - 'A'
			}
			b.WriteByte(ch)
		}
		b.WriteByte('\n')
	}
	_, err := w.Write(b.Bytes())
	return err
}
