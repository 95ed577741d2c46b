package catalog

var quizzes = []Quiz{
	{
		ID:          "variables-data-types",
		Title:       "Variables & Data Types",
		Description: "Understanding JavaScript variables, strings, numbers, and booleans",
		Difficulty:  DifficultyBeginner,
		Questions: []QuizQuestion{
			{
				ID:            "1",
				Type:          "multiple-choice",
				Question:      "What is the correct way to declare a variable in JavaScript?",
				Options:       []string{"variable myVar = 5;", "let myVar = 5;", "declare myVar = 5;", "var myVar := 5;"},
				CorrectAnswer: "let myVar = 5;",
				Explanation:   "The 'let' keyword is the modern way to declare variables in JavaScript. It provides block scope and prevents redeclaration issues.",
				Points:        10,
			},
			{
				ID:            "2",
				Type:          "multiple-choice",
				Question:      "Which of the following is NOT a JavaScript data type?",
				Options:       []string{"string", "boolean", "integer", "undefined"},
				CorrectAnswer: "integer",
				Explanation:   "JavaScript doesn't have a separate 'integer' type. All numbers in JavaScript are of type 'number', whether they're integers or floating-point numbers.",
				Points:        10,
			},
			{
				ID:            "3",
				Type:          "multiple-choice",
				Question:      "What will be the output of: typeof null",
				Options:       []string{"null", "undefined", "object", "boolean"},
				CorrectAnswer: "object",
				Explanation:   "This is a well-known quirk in JavaScript. The typeof operator returns 'object' for null, even though null is not actually an object.",
				Points:        10,
			},
			{
				ID:   "4",
				Type: "coding",
				Question: "Complete the code to create a variable that stores your name:",
				Code: "// Create a variable called 'myName' and assign your name to it\n// Your code here:",
				CorrectAnswer: "let myName = ",
				Explanation:   "Use 'let' or 'const' to declare a variable and assign a string value to it.",
				Points:        15,
			},
			{
				ID:            "5",
				Type:          "multiple-choice",
				Question:      "What is the result of: '5' + 3 in JavaScript?",
				Options:       []string{"8", "'53'", "53", "Error"},
				CorrectAnswer: "'53'",
				Explanation:   "JavaScript performs string concatenation when one operand is a string. The number 3 is converted to a string and concatenated with '5'.",
				Points:        10,
			},
		},
		TimeLimit: 15,
		XPReward:  50,
		Category:  "javascript",
		Type:      "mixed",
	},
	{
		ID:          "functions-scope",
		Title:       "Functions & Scope",
		Description: "Master JavaScript functions, parameters, and variable scope",
		Difficulty:  DifficultyBeginner,
		Questions: []QuizQuestion{
			{
				ID:            "1",
				Type:          "multiple-choice",
				Question:      "What is the correct syntax for a function declaration?",
				Options:       []string{"function myFunc() {}", "def myFunc() {}", "func myFunc() {}", "function: myFunc() {}"},
				CorrectAnswer: "function myFunc() {}",
				Explanation:   "Function declarations in JavaScript use the 'function' keyword followed by the function name and parentheses.",
				Points:        10,
			},
			{
				ID:       "2",
				Type:     "coding",
				Question: "Write a function that adds two numbers:",
				Code:     "// Complete this function\nfunction addNumbers(a, b) {\n  // Your code here\n}",
				CorrectAnswer: "return a + b",
				Explanation:   "Use the return statement to return the sum of the two parameters.",
				Points:        15,
			},
			{
				ID:       "3",
				Type:     "multiple-choice",
				Question: "What is function scope?",
				Options: []string{
					"Variables declared inside a function are accessible everywhere",
					"Variables declared inside a function are only accessible within that function",
					"Functions cannot access variables",
					"All variables are global",
				},
				CorrectAnswer: "Variables declared inside a function are only accessible within that function",
				Explanation:   "Function scope means that variables declared inside a function are only accessible within that function's body.",
				Points:        10,
			},
		},
		TimeLimit: 20,
		XPReward:  60,
		Category:  "javascript",
		Type:      "mixed",
	},
	{
		ID:          "arrays-objects",
		Title:       "Arrays & Objects",
		Description: "Working with JavaScript arrays and objects",
		Difficulty:  DifficultyIntermediate,
		Questions: []QuizQuestion{
			{
				ID:            "1",
				Type:          "multiple-choice",
				Question:      "How do you create an empty array in JavaScript?",
				Options:       []string{"let arr = {};", "let arr = [];", "let arr = new Array;", "Both B and C"},
				CorrectAnswer: "Both B and C",
				Explanation:   "You can create an empty array using either array literal syntax [] or the Array constructor.",
				Points:        10,
			},
			{
				ID:       "2",
				Type:     "coding",
				Question: "Access the first element of an array called 'fruits':",
				Code:     "let fruits = ['apple', 'banana', 'orange'];\n// Write code to get the first element:",
				CorrectAnswer: "fruits[0]",
				Explanation:   "Array indices start at 0, so the first element is accessed with fruits[0].",
				Points:        15,
			},
		},
		TimeLimit: 25,
		XPReward:  75,
		Category:  "javascript",
		Type:      "coding",
	},
	{
		ID:          "react-components",
		Title:       "Components & Props",
		Description: "Understanding React components and prop passing",
		Difficulty:  DifficultyIntermediate,
		Questions: []QuizQuestion{
			{
				ID:       "1",
				Type:     "multiple-choice",
				Question: "What is a React component?",
				Options: []string{
					"A JavaScript function that returns HTML",
					"A reusable piece of UI",
					"A function that returns JSX",
					"All of the above",
				},
				CorrectAnswer: "All of the above",
				Explanation:   "React components are JavaScript functions that return JSX, creating reusable pieces of UI.",
				Points:        10,
			},
			{
				ID:       "2",
				Type:     "coding",
				Question: "Create a simple React component that displays 'Hello World':",
				Code:     "// Complete this React component\nfunction HelloWorld() {\n  // Your code here\n}",
				CorrectAnswer: "return <h1>Hello World</h1>",
				Explanation:   "React components return JSX elements. Use JSX syntax to return HTML-like elements.",
				Points:        15,
			},
		},
		TimeLimit: 15,
		XPReward:  65,
		Category:  "react",
		Type:      "multiple-choice",
	},
	{
		ID:          "react-state-hooks",
		Title:       "State & Hooks",
		Description: "Master useState, useEffect, and other React hooks",
		Difficulty:  DifficultyIntermediate,
		Questions: []QuizQuestion{
			{
				ID:            "1",
				Type:          "multiple-choice",
				Question:      "What hook is used to manage state in functional components?",
				Options:       []string{"useEffect", "useState", "useContext", "useReducer"},
				CorrectAnswer: "useState",
				Explanation:   "useState is the primary hook for managing state in React functional components.",
				Points:        10,
			},
		},
		TimeLimit: 20,
		XPReward:  80,
		Category:  "react",
		Type:      "mixed",
		Locked:    true,
	},
	{
		ID:          "css-flexbox",
		Title:       "Flexbox Mastery",
		Description: "Master CSS Flexbox layout system",
		Difficulty:  DifficultyIntermediate,
		Questions: []QuizQuestion{
			{
				ID:            "1",
				Type:          "multiple-choice",
				Question:      "Which property is used to make an element a flex container?",
				Options:       []string{"display: flex", "flex: 1", "flex-direction: row", "justify-content: center"},
				CorrectAnswer: "display: flex",
				Explanation:   "The display: flex property makes an element a flex container, enabling flexbox layout for its children.",
				Points:        10,
			},
		},
		TimeLimit: 12,
		XPReward:  55,
		Category:  "css",
		Type:      "multiple-choice",
	},
}
