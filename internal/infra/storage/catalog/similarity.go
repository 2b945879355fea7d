package catalog

// similarityRatio возвращает степень схожести двух строк в диапазоне [0, 1]:
// 2*LCS(a,b) / (len(a)+len(b)), где LCS — длина наибольшей общей подпоследовательности.
// Для пустой строки результат всегда 0. Считается по рунам, регистр не нормализуется —
// это обязанность вызывающего.
func similarityRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Классическое DP по строкам таблицы, храним только две строки
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2 * float64(lcs) / float64(len(ra)+len(rb))
}
