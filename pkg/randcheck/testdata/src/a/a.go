package a

import (
	"math/rand"
	randv2 "math/rand/v2"
)

func swap(s []int) func(i, j int) {
	return func(i, j int) { s[i], s[j] = s[j], s[i] }
}

func f() {
	s := []int{1, 2, 3}

	rand.Shuffle(len(s), swap(s)) // want `math/rand\.Shuffle bypasses the shuffle package`

	_ = rand.Perm(3) // want `math/rand\.Perm bypasses the shuffle package`

	randv2.Shuffle(len(s), swap(s)) // want `math/rand/v2\.Shuffle bypasses the shuffle package`

	r := randv2.New(randv2.NewPCG(1, 2))
	r.Shuffle(len(s), swap(s))
	_ = r.Perm(3)
	_ = rand.Intn(3)
}
