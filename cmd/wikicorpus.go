package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	wikicorpus "github.com/KorAP/wikicorpus"
	"github.com/alecthomas/kong"
	"github.com/gosuri/uiprogress"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var cli struct {
	Corpus string `kong:"required,short='c',help='The Wikicorpus directory'"`
	Lang   string `kong:"short='l',default='eng',help='The 3-letter language code of the edition to read'"`
	Latin1 bool   `kong:"help='Decode the corpus files as ISO-8859-1 instead of UTF-8'"`
	Mode   string `kong:"short='m',default='words',enum='words,sents,tagged,raw,langs,stat',help='What to print (words, sents, tagged, raw, langs, stat)'"`
}

// Main method for command line handling
func main() {

	// Parse command line parameters
	parser := kong.Must(
		&cli,
		kong.Name("wikicorpus"),
		kong.Description("Reader for the tagged and lemmatized Wikicorpus"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])

	parser.FatalIfErrorf(err)

	var enc encoding.Encoding
	if cli.Latin1 {
		enc = charmap.ISO8859_1
	}

	corpus, err := wikicorpus.Open(cli.Corpus, enc)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to open the corpus directory")
	}

	out := bufio.NewWriter(os.Stdout)
	stdout = out
	defer out.Flush()

	switch cli.Mode {
	case "langs":
		for _, lang := range corpus.Langs() {
			fmt.Fprintln(out, lang)
		}

	case "words":
		words := corpus.Words(cli.Lang)
		for words.Scan() {
			fmt.Fprintln(out, words.Word().Word)
		}
		fatalIf(words.Err())

	case "tagged":
		words := corpus.Words(cli.Lang)
		for words.Scan() {
			tok := words.Word()
			fmt.Fprintf(out, "%s\t%s\n", tok.Word, tok.Tag)
		}
		fatalIf(words.Err())

	case "sents":
		sents := corpus.Sents(cli.Lang)
		for sents.Scan() {
			fmt.Fprintln(out, strings.Join(sents.Sent().Words(), " "))
		}
		fatalIf(sents.Err())

	case "raw":
		docs := corpus.Docs(cli.Lang)
		for docs.Scan() {
			fmt.Fprintln(out, docs.Doc().Text())
		}
		fatalIf(docs.Err())

	case "stat":
		stat(corpus, out)
	}
}

// stat walks all files of the language and prints document, sentence
// and token counts.
func stat(corpus *wikicorpus.Corpus, out *bufio.Writer) {
	files := corpus.Files(cli.Lang)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(files))
	bar.AppendCompleted()
	bar.PrependElapsed()

	var docs, sents, tokens int
	for _, file := range files {
		stream := wikicorpus.NewStream([]wikicorpus.FileSpec{file})
		for stream.Scan() {
			doc := stream.Doc()
			docs++
			sents += len(doc.Sents)
			for _, sent := range doc.Sents {
				tokens += len(sent)
			}
		}
		if err := stream.Err(); err != nil {
			log.Error().Err(err).Str("file", file.Path).Msg("Skipping the rest of the file")
		}
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(out, "documents\t%d\n", docs)
	fmt.Fprintf(out, "sentences\t%d\n", sents)
	fmt.Fprintf(out, "tokens\t%d\n", tokens)
}

var stdout *bufio.Writer

func fatalIf(err error) {
	if err != nil {
		stdout.Flush()
		log.Fatal().Err(err).Msg("Reading the corpus failed")
	}
}
