package catalog

// symbolTable is the catalogue's compile-time data: a curated set of
// real LaTeX commands. The full production table is generated from a
// symbol description document by external build tooling, which is
// outside this module's scope; this table is the shipped default.
// TextMode/MathMode and FontEncoding follow what each command actually
// requires.
var symbolTable = []Symbol{
	// Plain text punctuation commands (latex2e, OT1, text mode only).
	{Command: `\textasciicircum`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textasciitilde`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textbackslash`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textdagger`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textsection`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textparagraph`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},
	{Command: `\textellipsis`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: false},

	// Greek letters (latex2e, OT1, math mode only).
	{Command: `\alpha`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\beta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\gamma`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\delta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\epsilon`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\zeta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\eta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\theta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\lambda`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\mu`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\pi`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\sigma`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\phi`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\chi`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\psi`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\omega`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Gamma`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Delta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Theta`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Lambda`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Sigma`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Phi`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Omega`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},

	// Binary operators and relations.
	{Command: `\pm`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: true},
	{Command: `\times`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: true},
	{Command: `\div`, Package: "latex2e", FontEncoding: "OT1", TextMode: true, MathMode: true},
	{Command: `\cdot`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\leq`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\geq`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\neq`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\approx`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\equiv`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\sim`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\propto`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\in`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\notin`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\subset`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\subseteq`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\cup`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\cap`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\emptyset`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\infty`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\partial`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\nabla`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\forall`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\exists`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\sum`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\prod`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\int`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\oint`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\sqrt`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},

	// Arrows (math mode only).
	{Command: `\rightarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\leftarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\leftrightarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Rightarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Leftarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\Leftrightarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\mapsto`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\uparrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},
	{Command: `\downarrow`, Package: "latex2e", FontEncoding: "OT1", TextMode: false, MathMode: true},

	// amssymb entries in the U font encoding, showing the catalogue
	// carrying more than one (package, font_encoding) pair.
	{Command: `\nexists`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},
	{Command: `\varnothing`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},
	{Command: `\lesssim`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},
	{Command: `\gtrsim`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},
	{Command: `\therefore`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},
	{Command: `\because`, Package: "amssymb", FontEncoding: "U", TextMode: false, MathMode: true},

	// wasysym entries, showing a third package.
	{Command: `\diameter`, Package: "wasysym", FontEncoding: "U", TextMode: true, MathMode: true},
	{Command: `\lightning`, Package: "wasysym", FontEncoding: "U", TextMode: false, MathMode: true},
}
