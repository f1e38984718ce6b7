package service

import (
	"contest_client/internal/common"
	"contest_client/internal/domain/model"
)

const javaTemplate = `import java.util.*;

public class Main {
    public static void main(String[] args) {
        Scanner sc = new Scanner(System.in);

        // Write your solution here

        sc.close();
    }
}`

const cppTemplate = `#include <iostream>
using namespace std;

int main() {
    // Write your solution here

    return 0;
}`

// TemplateFor returns the starter code for a problem/language pair. It is a
// pure lookup: templates are static per language and the gateway only calls
// it on an explicit problem or language change, so it can never clobber
// in-progress edits.
func TemplateFor(problem *model.Problem, language model.Language) (string, error) {
	switch language {
	case model.LanguageJava:
		return javaTemplate, nil
	case model.LanguageCpp:
		return cppTemplate, nil
	default:
		return "", common.Errorf("no template for language %q: %w", language, common.ErrBadRequest)
	}
}
