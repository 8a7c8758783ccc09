package page

// The page copy. JaxPY is a small Python IDE: a syntax-highlighted
// editor with line numbers, a one-keystroke script runner, fuzzy file
// search, and the built-in Bolt assistant talking to a local Ollama
// model.

func sections() []Section {
	return []Section{
		{
			Slug:  "hero",
			Title: "JaxPY",
			Body: `# JaxPY

**A fast, friendly Python IDE that stays out of your way.**

Write, run, and refine Python in a single window. No project wizards,
no indexing pauses, no cloud account. Open a file and start typing.
`,
		},
		{
			Slug:  "features",
			Title: "Everything you need, nothing you don't",
			Body: `## Everything you need, nothing you don't

- **Real syntax highlighting** — keywords, builtins, strings, comments,
  and function calls, each with its own color. Comments always win, so
  commented-out code never lights up.
- **Line numbers that follow you** — a gutter that grows with your file
  and highlights the line you're on.
- **Run without leaving** — one keystroke pipes your script through the
  interpreter and streams output (and tracebacks) into the output pane.
- **Find any file fast** — a fuzzy search dialog over your working
  directory; type a few letters, hit enter, keep coding.
- **A dark theme tuned for long sessions** — the editor, the output
  pane, and every dialog share one palette.
`,
		},
		{
			Slug:  "bolt",
			Title: "Meet Bolt",
			Body: `## Meet Bolt, your offline pair programmer

Bolt is JaxPY's built-in assistant. Ask for a function, a fix, or an
explanation and Bolt answers from a **local Ollama model** — your code
never leaves your machine.

- Runs against ` + "`qwen2.5-coder`" + ` out of the box; point it at any model
  your Ollama daemon serves.
- Answers stream into a side pane; one key copies a snippet straight
  into the editor at your cursor.
- No API key, no subscription, no network round-trip.
`,
		},
		{
			Slug:  "timeline",
			Title: "How JaxPY grew",
			Body: `## How JaxPY grew

Every release kept the same promise: open a file, start typing.
`,
		},
		{
			Slug:  "install",
			Title: "Get JaxPY",
			Body: `## Get JaxPY

` + "```" + `
git clone https://github.com/jaxpy/jaxpy
cd jaxpy
pip install -r requirements.txt
python app.py
` + "```" + `

Python 3.9+ and a desktop session are all you need. Bolt additionally
wants a running Ollama daemon — install one model and you're set.
`,
		},
	}
}

func timeline() []TimelineEntry {
	return []TimelineEntry{
		{
			Version: "v0.1",
			Date:    "Mar 2024",
			Title:   "Editor core",
			Blurb:   "A split window: editor on the left, live output pane on the right.",
		},
		{
			Version: "v0.2",
			Date:    "Jun 2024",
			Title:   "Highlighting and line numbers",
			Blurb:   "Full Python syntax highlighting plus a current-line gutter.",
		},
		{
			Version: "v0.3",
			Date:    "Oct 2024",
			Title:   "Run and search",
			Blurb:   "One-keystroke script runner and the fuzzy file-search dialog.",
		},
		{
			Version: "v0.4",
			Date:    "Feb 2025",
			Title:   "Bolt assistant",
			Blurb:   "Offline AI help from a local Ollama model, streamed into a side pane.",
		},
	}
}

const footer = "JaxPY — made for people who just want to write Python."
