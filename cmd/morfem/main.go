package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"

	"github.com/ovidiuz/morfem"
	"github.com/ovidiuz/morfem/syllable"
)

func main() {
	// .env is optional; environment beats defaults either way.
	godotenv.Load()

	var (
		pos       = flag.String("pos", "noun", "part of speech: noun or verb")
		rulesPath = flag.String("rules", "", "path to a YAML rule dataset (default: built-in Romanian rules)")
		syllables = flag.Bool("syllables", false, "also print the syllable split")
		debug     = flag.Bool("debug", false, "dump raw decompositions")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <word>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	word := flag.Arg(0)

	storage, err := ruleStorage(*rulesPath)
	if err != nil {
		log.Fatal(err)
	}
	decomposer, err := morfem.NewDecomposerFromStorage(storage)
	if err != nil {
		log.Fatal(err)
	}

	normalizer := morfem.NewNormalizer(morfem.NewCedillaCharFilter(), morfem.NewLowercaseCharFilter())
	decompositions, err := decomposer.Decompose(normalizer.Normalize(word), morfem.PartOfSpeech(*pos))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%s): %d decomposition(s)\n", word, *pos, len(decompositions))
	for i, d := range decompositions {
		fmt.Printf("%d. %s\n", i+1, d)
	}
	if *debug {
		pp.Println(decompositions)
	}
	if *syllables {
		fmt.Printf("syllables: %s\n", syllable.NewSyllabifier().Syllabify(word))
	}
}

// ruleStorage picks the dataset source: an explicit YAML file, a MySQL
// database when MORFEM_DB_ADDR is set, or the built-in Romanian table.
func ruleStorage(rulesPath string) (morfem.RuleStorage, error) {
	if rulesPath != "" {
		return morfem.NewYAMLRuleStorage(rulesPath), nil
	}
	if addr := os.Getenv("MORFEM_DB_ADDR"); addr != "" {
		config := morfem.NewDBConfig(
			os.Getenv("MORFEM_DB_USER"),
			os.Getenv("MORFEM_DB_PASSWORD"),
			addr,
			os.Getenv("MORFEM_DB_PORT"),
			os.Getenv("MORFEM_DB_NAME"),
		)
		db, err := morfem.NewDBClient(config)
		if err != nil {
			return nil, err
		}
		return morfem.NewStorageRdbImpl(db), nil
	}
	return morfem.NewStaticRuleStorage(morfem.NewRomanianRuleTable()), nil
}
