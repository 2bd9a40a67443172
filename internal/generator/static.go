package generator

import (
	"context"
	"fmt"

	"github.com/Shadab-Akram/FlashCard/internal/domain/flashcard"
)

// StaticGenerator serves cards from built-in per-subject banks. It is the
// deterministic fallback when the LLM endpoint is unreachable: it never
// errors and always returns exactly the requested count, cycling through
// the bank when it is smaller than the request.
type StaticGenerator struct{}

var _ Generator = (*StaticGenerator)(nil)

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (s *StaticGenerator) Generate(_ context.Context, req Request) ([]QA, error) {
	if req.Content != "" {
		return cycleTo(documentQuestions(req.Subject), req.Count), nil
	}

	subjectBank, ok := questionBank[req.Subject]
	if !ok {
		subjectBank = questionBank["mathematics"]
	}
	pairs, ok := subjectBank[req.Difficulty]
	if !ok {
		pairs = subjectBank[flashcard.DifficultyMedium]
	}

	return cycleTo(pairs, req.Count), nil
}

// documentQuestions produces topic-generic cards for PDF-backed sessions.
// The static path does no content understanding; the questions reference
// the document's topic and point at where answers would live.
func documentQuestions(topic string) []QA {
	if topic == "" {
		topic = "the document"
	}
	return []QA{
		{
			Question: fmt.Sprintf("What are the main concepts discussed in %s?", topic),
			Answer:   "The main concepts would be found in the document's key sections and themes.",
		},
		{
			Question: fmt.Sprintf("How does %s relate to practical applications?", topic),
			Answer:   "The practical applications would be discussed in the document's examples and case studies.",
		},
		{
			Question: fmt.Sprintf("What are the key findings or conclusions in %s?", topic),
			Answer:   "The key findings would be summarized in the document's conclusion section.",
		},
		{
			Question: fmt.Sprintf("What evidence supports the main arguments in %s?", topic),
			Answer:   "Supporting evidence would be presented throughout the document in the form of data, examples, and citations.",
		},
		{
			Question: fmt.Sprintf("What methodology is used to study %s?", topic),
			Answer:   "The methodology would be detailed in the methods or approach section of the document.",
		},
		{
			Question: fmt.Sprintf("How has %s evolved over time?", topic),
			Answer:   "Historical context and development would be covered in the background or introduction sections.",
		},
		{
			Question: fmt.Sprintf("What are the limitations or challenges discussed in %s?", topic),
			Answer:   "Limitations and challenges would typically be addressed in the discussion or conclusion sections.",
		},
		{
			Question: fmt.Sprintf("What are the future implications of %s?", topic),
			Answer:   "Future implications and recommendations would be discussed in the conclusion or future work sections.",
		},
	}
}

var questionBank = map[string]map[flashcard.Difficulty][]QA{
	"mathematics": {
		flashcard.DifficultyEasy: {
			{Question: "What is the Pythagorean theorem?", Answer: "The Pythagorean theorem states that in a right triangle, a² + b² = c², where c is the length of the hypotenuse and a and b are the lengths of the other two sides."},
			{Question: "What is the order of operations in mathematics?", Answer: "The order of operations is PEMDAS: Parentheses, Exponents, Multiplication and Division (from left to right), Addition and Subtraction (from left to right)."},
			{Question: "What is the difference between mean, median, and mode?", Answer: "Mean is the average (sum divided by count), median is the middle value when ordered, and mode is the most frequent value."},
			{Question: "What is a prime number?", Answer: "A prime number is a natural number greater than 1 that has exactly two factors: 1 and itself. Examples: 2, 3, 5, 7, 11."},
			{Question: "How do you find the slope of a line?", Answer: "Slope = (y₂ - y₁)/(x₂ - x₁) for any two points (x₁,y₁) and (x₂,y₂) on the line. It measures the steepness and direction of the line."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What is the quadratic formula and when is it used?", Answer: "The quadratic formula x = (-b ± √(b² - 4ac)) / 2a is used to solve quadratic equations in the form ax² + bx + c = 0. It gives all real or complex roots of the quadratic equation."},
			{Question: "Explain the concept of a function's derivative.", Answer: "A derivative measures the rate of change of a function at any given point. It represents the slope of the tangent line to the function's graph at that point and helps understand how the function is changing."},
			{Question: "What is a logarithm and how does it relate to exponents?", Answer: "A logarithm is the inverse of exponentiation. If bˣ = y, then logb(y) = x. Logarithms convert multiplication to addition and are useful in many applications."},
			{Question: "Explain the concept of mathematical induction.", Answer: "Mathematical induction proves statements for all natural numbers by showing: 1) Base case is true, 2) If true for k, then true for k+1. This proves the statement for all n ≥ base case."},
			{Question: "What is probability and how is it calculated?", Answer: "Probability measures the likelihood of events occurring. It's calculated as (favorable outcomes)/(total possible outcomes) for equally likely events. Basic rules include addition and multiplication rules."},
		},
		flashcard.DifficultyHard: {
			{Question: "Explain the relationship between complex numbers and vector rotations in 2D space.", Answer: "Complex numbers can represent 2D rotations where multiplication by a complex number z = a + bi corresponds to scaling by |z| and rotating by arg(z). This connects algebra with geometric transformations."},
			{Question: "How does the concept of a limit relate to the derivative in calculus?", Answer: "The derivative is defined as the limit of the difference quotient as h approaches 0: f'(x) = lim(h→0)[(f(x+h)-f(x))/h]. This implies continuity at points where the derivative exists."},
			{Question: "Analyze the connection between eigenvalues and matrix diagonalization.", Answer: "Eigenvalues (λ) and eigenvectors (v) satisfy Av = λv. A matrix is diagonalizable if it has n linearly independent eigenvectors. The diagonalization P⁻¹AP = D connects linear transformations with their canonical forms."},
			{Question: "Explain how the Fundamental Theorem of Calculus bridges differential and integral calculus.", Answer: "The theorem states that if F(x) is an antiderivative of f(x), then ∫[a to b]f(x)dx = F(b)-F(a). This shows integration and differentiation are inverse operations and connects local (derivative) with global (integral) properties."},
			{Question: "How does measure theory extend the concept of integration beyond the Riemann integral?", Answer: "Measure theory provides a general framework for integration, allowing integration over more general sets and functions. The Lebesgue integral, based on measure theory, overcomes limitations of the Riemann integral and connects with probability theory."},
		},
	},
	"science": {
		flashcard.DifficultyEasy: {
			{Question: "What are the three states of matter?", Answer: "The three main states of matter are solid, liquid, and gas. Each state has different properties based on the arrangement and movement of particles."},
			{Question: "What is photosynthesis?", Answer: "Photosynthesis is the process by which plants convert sunlight, water, and carbon dioxide into glucose and oxygen. It occurs in the chloroplasts of plant cells."},
			{Question: "What is gravity?", Answer: "Gravity is a force that attracts objects toward each other. On Earth, it pulls objects toward the center of the planet, giving them weight."},
			{Question: "What causes seasons?", Answer: "Seasons are caused by Earth's tilted axis as it orbits the Sun. This changes the amount of direct sunlight different parts of Earth receive throughout the year."},
			{Question: "What is the difference between weather and climate?", Answer: "Weather is the day-to-day condition of the atmosphere, while climate is the average weather pattern in an area over many years."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What is the difference between mitosis and meiosis?", Answer: "Mitosis produces two identical daughter cells for growth and repair, while meiosis produces four genetically different cells for reproduction. Meiosis involves two divisions and genetic recombination."},
			{Question: "Explain Newton's laws of motion.", Answer: "Newton's laws are: 1) An object at rest stays at rest unless acted upon by a force, 2) Force equals mass times acceleration (F=ma), 3) For every action, there is an equal and opposite reaction."},
			{Question: "What is the structure of DNA?", Answer: "DNA is a double helix structure made of nucleotides. Each nucleotide contains a sugar, phosphate group, and one of four bases (A, T, C, G). A pairs with T, and C pairs with G through hydrogen bonds."},
			{Question: "How does the greenhouse effect work?", Answer: "The greenhouse effect occurs when gases in the atmosphere trap heat from the sun. These gases allow sunlight to pass through but absorb reflected infrared radiation, warming the Earth."},
			{Question: "How do vaccines work?", Answer: "Vaccines contain weakened or dead pathogens or their parts to stimulate immune response. This creates memory cells that can quickly respond to future infections."},
		},
		flashcard.DifficultyHard: {
			{Question: "Explain quantum entanglement and its implications for quantum computing.", Answer: "Quantum entanglement occurs when particles become correlated in such a way that the quantum state of each particle cannot be described independently. This property is fundamental to quantum computing as it allows for quantum bits to exist in multiple states simultaneously."},
			{Question: "How does the electron transport chain contribute to ATP synthesis?", Answer: "The electron transport chain creates a proton gradient across the inner mitochondrial membrane through a series of redox reactions. This gradient drives ATP synthesis through chemiosmosis and ATP synthase."},
			{Question: "Describe the relationship between entropy and the second law of thermodynamics.", Answer: "The second law of thermodynamics states that the total entropy of an isolated system always increases over time. This means that systems tend toward maximum entropy, leading to the irreversibility of many natural processes."},
			{Question: "How does general relativity explain gravitational lensing?", Answer: "General relativity predicts that massive objects curve spacetime, causing light to follow curved paths. This creates gravitational lensing effects used to study distant galaxies and dark matter distribution."},
			{Question: "Describe the mechanism of CRISPR-Cas9 gene editing.", Answer: "CRISPR-Cas9 uses guide RNA to target specific DNA sequences and Cas9 enzyme to cut DNA at precise locations. This allows for gene insertion, deletion, or modification with high precision."},
		},
	},
	"history": {
		flashcard.DifficultyEasy: {
			{Question: "Who was the first President of the United States?", Answer: "George Washington was the first President, serving from 1789 to 1797. He established many important precedents for American leadership."},
			{Question: "What was the Declaration of Independence?", Answer: "The Declaration of Independence was a document adopted in 1776 that announced the American colonies' separation from British rule."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What were the main causes of the American Revolution?", Answer: "The American Revolution was caused by taxation without representation, British colonial policies, growing American identity, and desires for self-governance."},
			{Question: "Explain the significance of the French Revolution.", Answer: "The French Revolution overthrew monarchy, established citizenship rights, and spread ideas of liberty, equality, and fraternity across Europe."},
			{Question: "What was the impact of the Civil Rights Movement in America?", Answer: "The Civil Rights Movement led to desegregation, voting rights, anti-discrimination laws, and increased social awareness of racial inequality."},
		},
		flashcard.DifficultyHard: {
			{Question: "Analyze the long-term impacts of the Industrial Revolution on modern society.", Answer: "The Industrial Revolution transformed society through urbanization, technological advancement, labor reforms, and economic systems. It led to modern capitalism, environmental challenges, and social class restructuring."},
			{Question: "Compare and contrast the causes of World War I and World War II.", Answer: "WWI was triggered by nationalism, militarism, and alliance systems, while WWII arose from failed peace treaties, economic depression, and aggressive totalitarian regimes. Both wars reshaped global power structures."},
			{Question: "Evaluate the significance of the Cold War in shaping modern international relations.", Answer: "The Cold War established a bipolar world order, led to proxy wars, arms race, and ideological divisions. Its legacy continues in current international politics, alliances, and nuclear diplomacy."},
		},
	},
	"geography": {
		flashcard.DifficultyEasy: {
			{Question: "What are the seven continents?", Answer: "The seven continents are North America, South America, Europe, Asia, Africa, Australia, and Antarctica."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What are the major tectonic plates and how do they interact?", Answer: "Major tectonic plates include Pacific, North American, Eurasian, and African plates. They interact through convergent, divergent, and transform boundaries, causing earthquakes and volcanic activity."},
		},
		flashcard.DifficultyHard: {
			{Question: "Explain the impact of climate change on global weather patterns.", Answer: "Climate change affects precipitation patterns, ocean currents, extreme weather events, and ecosystem distribution, leading to various environmental and social challenges."},
		},
	},
	"literature": {
		flashcard.DifficultyEasy: {
			{Question: "What is the difference between poetry and prose?", Answer: "Poetry uses structured language, rhythm, and often rhyme to express ideas and emotions, while prose uses ordinary written language in sentences and paragraphs."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What are the main elements of Shakespearean tragedy?", Answer: "Shakespearean tragedies feature a tragic hero with a fatal flaw, supernatural elements, internal and external conflicts, and themes of fate versus free will."},
		},
		flashcard.DifficultyHard: {
			{Question: "Analyze the themes of identity and alienation in modern literature.", Answer: "Modern literature explores identity through psychological complexity, social isolation, and cultural displacement, reflecting broader societal changes and individual struggles."},
			{Question: "Compare the different literary movements of the 20th century.", Answer: "20th century literature included modernism, postmodernism, magical realism, and beat generation, each reflecting different social and philosophical perspectives."},
		},
	},
	"computer_science": {
		flashcard.DifficultyEasy: {
			{Question: "What is a variable in programming?", Answer: "A variable is a named storage location in computer memory that holds data which can be modified during program execution."},
		},
		flashcard.DifficultyMedium: {
			{Question: "What is Object-Oriented Programming?", Answer: "OOP is a programming paradigm based on objects containing data and code. It features encapsulation, inheritance, polymorphism, and abstraction."},
		},
		flashcard.DifficultyHard: {
			{Question: "Explain the concept of time complexity in algorithms.", Answer: "Time complexity measures how algorithm runtime grows with input size, typically expressed in Big O notation. It helps evaluate algorithm efficiency and scalability."},
			{Question: "What is the difference between HTTP and HTTPS?", Answer: "HTTPS adds SSL/TLS encryption to HTTP, securing data transmission between client and server. It provides authentication, integrity, and confidentiality."},
		},
	},
}
