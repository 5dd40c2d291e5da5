// Copyright 2012 Nathan Fiedler. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pickle

// registerMathCommands installs the prefix arithmetic and comparison
// commands of spec §4.5: each folds left to right across >=2 arguments,
// the unary group takes exactly one.
func registerMathCommands(i *Interpreter) {
	fold := map[string]func(a, b int64) (int64, error){
		"+":  func(a, b int64) (int64, error) { return a + b, nil },
		"-":  func(a, b int64) (int64, error) { return a - b, nil },
		"*":  func(a, b int64) (int64, error) { return a * b, nil },
		"/":  divFold,
		"%":  modFold,
		"**": func(a, b int64) (int64, error) { return intPow(a, b) },
		"<<": func(a, b int64) (int64, error) { return a << uint(b), nil },
		">>": func(a, b int64) (int64, error) { return a >> uint(b), nil },
		"&":  func(a, b int64) (int64, error) { return a & b, nil },
		"|":  func(a, b int64) (int64, error) { return a | b, nil },
		"^":  func(a, b int64) (int64, error) { return a ^ b, nil },
		"&&": func(a, b int64) (int64, error) { return boolInt(a != 0 && b != 0), nil },
		"||": func(a, b int64) (int64, error) { return boolInt(a != 0 || b != 0), nil },
		"min": func(a, b int64) (int64, error) {
			if a < b {
				return a, nil
			}
			return b, nil
		},
		"max": func(a, b int64) (int64, error) {
			if a > b {
				return a, nil
			}
			return b, nil
		},
	}
	for name, fn := range fold {
		name, fn := name, fn
		i.cmds.register(name, func(i *Interpreter, argv []string) Result {
			return commandFold(name, fn, argv)
		})
	}

	cmp := map[string]func(a, b int64) bool{
		"==": func(a, b int64) bool { return a == b },
		"!=": func(a, b int64) bool { return a != b },
		"<":  func(a, b int64) bool { return a < b },
		"<=": func(a, b int64) bool { return a <= b },
		">":  func(a, b int64) bool { return a > b },
		">=": func(a, b int64) bool { return a >= b },
	}
	for name, fn := range cmp {
		name, fn := name, fn
		i.cmds.register(name, func(i *Interpreter, argv []string) Result {
			return commandCompare(name, fn, argv)
		})
	}

	unary := map[string]func(a int64) (int64, error){
		"!": func(a int64) (int64, error) { return boolInt(a == 0), nil },
		"~": func(a int64) (int64, error) { return ^a, nil },
		"not": func(a int64) (int64, error) { return boolInt(a == 0), nil },
		"invert": func(a int64) (int64, error) { return ^a, nil },
		"negate": func(a int64) (int64, error) { return -a, nil },
		"abs": func(a int64) (int64, error) {
			if a < 0 {
				return -a, nil
			}
			return a, nil
		},
	}
	for name, fn := range unary {
		name, fn := name, fn
		i.cmds.register(name, func(i *Interpreter, argv []string) Result {
			return commandUnaryMath(name, fn, argv)
		})
	}
	i.cmds.register("bool", func(i *Interpreter, argv []string) Result {
		return commandUnaryMath("bool", func(a int64) (int64, error) { return boolInt(a != 0), nil }, argv)
	})
	i.cmds.register("pow", commandPow)
	i.cmds.register("log", commandLog)
}

func divFold(a, b int64) (int64, error) {
	if b == 0 {
		return 0, exprErrf("division by zero")
	}
	return a / b, nil
}

func modFold(a, b int64) (int64, error) {
	if b == 0 {
		return 0, exprErrf("division by zero")
	}
	return a % b, nil
}

// numberError adapts a parseInt failure to a Result.
func numberError(err error) Result {
	if re, ok := err.(resultError); ok {
		return re.r
	}
	return Errorf(ENumber, "%s", err.Error())
}

func commandFold(name string, fn func(a, b int64) (int64, error), argv []string) Result {
	if len(argv) < 3 {
		return arityError(argv[0], name+" arg arg ?arg ...?")
	}
	acc, err := parseInt(argv[1])
	if err != nil {
		return numberError(err)
	}
	for _, s := range argv[2:] {
		v, err := parseInt(s)
		if err != nil {
			return numberError(err)
		}
		next, pErr := fn(acc, v)
		if pErr != nil {
			return Errorf(EOperand, "%s", pErr.Error())
		}
		acc = next
	}
	return OkResult(formatBase(acc, 10))
}

func commandCompare(name string, fn func(a, b int64) bool, argv []string) Result {
	if len(argv) < 3 {
		return arityError(argv[0], name+" arg arg ?arg ...?")
	}
	prev, err := parseInt(argv[1])
	if err != nil {
		return numberError(err)
	}
	result := true
	for _, s := range argv[2:] {
		v, err := parseInt(s)
		if err != nil {
			return numberError(err)
		}
		if !fn(prev, v) {
			result = false
		}
		prev = v
	}
	return OkResult(formatBase(boolInt(result), 10))
}

func commandUnaryMath(name string, fn func(a int64) (int64, error), argv []string) Result {
	if len(argv) != 2 {
		return arityError(argv[0], name+" arg")
	}
	v, err := parseInt(argv[1])
	if err != nil {
		return numberError(err)
	}
	n, pErr := fn(v)
	if pErr != nil {
		return Errorf(EOperand, "%s", pErr.Error())
	}
	return OkResult(formatBase(n, 10))
}

func commandPow(i *Interpreter, argv []string) Result {
	if len(argv) != 3 {
		return arityError(argv[0], "pow base exp")
	}
	base, err := parseInt(argv[1])
	if err != nil {
		return numberError(err)
	}
	exp, err := parseInt(argv[2])
	if err != nil {
		return numberError(err)
	}
	n, pErr := intPow(base, exp)
	if pErr != nil {
		return Errorf(EOperand, "%s", pErr.Error())
	}
	return OkResult(formatBase(n, 10))
}

func commandLog(i *Interpreter, argv []string) Result {
	if len(argv) != 3 {
		return arityError(argv[0], "log x base")
	}
	x, err := parseInt(argv[1])
	if err != nil {
		return numberError(err)
	}
	base, err := parseInt(argv[2])
	if err != nil {
		return numberError(err)
	}
	n, pErr := intLog(x, base)
	if pErr != nil {
		return Errorf(EOperand, "%s", pErr.Error())
	}
	return OkResult(formatBase(n, 10))
}
