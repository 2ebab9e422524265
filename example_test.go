package embedgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/yangminglab/embedgo"
	"github.com/yangminglab/embedgo/blobstore"
	"github.com/yangminglab/embedgo/vocab"
)

func ExampleNewRandom() {
	idx, err := vocab.NewIndex([]string{"fawn", "abandon", "cat"})
	if err != nil {
		log.Fatal(err)
	}

	e, err := embedgo.NewRandom(idx, 8, embedgo.WithSeed(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(e.Dimension())
	fmt.Println(e.Contains("fawn"))
	fmt.Println(e.Contains("dog"))
	// Output:
	// 8
	// true
	// false
}

func ExampleLoadGlove() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	if err := store.Put(ctx, "vectors.txt", []byte("fawn 0.1 0.2\nabandon 0.3 0.4\ncat 0.5 0.6\n")); err != nil {
		log.Fatal(err)
	}

	e, err := embedgo.LoadGlove(ctx, embedgo.Remote(store, "vectors.txt"))
	if err != nil {
		log.Fatal(err)
	}

	vecs, err := e.LookupAll("cat", "fawn")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(e.Dimension())
	fmt.Println(vecs[0])
	fmt.Println(vecs[1])
	// Output:
	// 2
	// [0.5 0.6]
	// [0.1 0.2]
}
